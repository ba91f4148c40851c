package services

import (
	"context"
	"io"
	"strings"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
	"github.com/nkalgutkar/sports-management/storage"
)

// In-memory repository stubs. They honor the same sentinel errors as the
// postgres implementations so the services cannot tell the difference.

type stubManagerRepo struct {
	managers map[int]*models.Manager
	nextID   int
}

func newStubManagerRepo(seed ...*models.Manager) *stubManagerRepo {
	r := &stubManagerRepo{managers: make(map[int]*models.Manager)}
	for _, m := range seed {
		r.nextID++
		if m.ID == 0 {
			m.ID = r.nextID
		}
		r.managers[m.ID] = m
	}
	return r
}

func (r *stubManagerRepo) Create(_ context.Context, manager *models.Manager) error {
	for _, m := range r.managers {
		if m.Email == manager.Email {
			return repositories.ErrManagerEmailConflict
		}
	}
	r.nextID++
	manager.ID = r.nextID
	cp := *manager
	r.managers[manager.ID] = &cp
	return nil
}

func (r *stubManagerRepo) GetByID(_ context.Context, id int) (*models.Manager, error) {
	m, ok := r.managers[id]
	if !ok {
		return nil, repositories.ErrManagerNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *stubManagerRepo) GetByEmailAndContact(_ context.Context, email, contact string) (*models.Manager, error) {
	for _, m := range r.managers {
		if m.Email == email && m.Contact == contact {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repositories.ErrManagerNotFound
}

func (r *stubManagerRepo) GetAll(_ context.Context) ([]models.Manager, error) {
	out := make([]models.Manager, 0, len(r.managers))
	for _, m := range r.managers {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubManagerRepo) Update(_ context.Context, manager *models.Manager) error {
	if _, ok := r.managers[manager.ID]; !ok {
		return repositories.ErrManagerNotFound
	}
	cp := *manager
	r.managers[manager.ID] = &cp
	return nil
}

func (r *stubManagerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.managers[id]; !ok {
		return repositories.ErrManagerNotFound
	}
	delete(r.managers, id)
	return nil
}

func (r *stubManagerRepo) ExistsByEmail(_ context.Context, email string, excludeID int) (bool, error) {
	for _, m := range r.managers {
		if m.ID != excludeID && m.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubManagerRepo) ExistsBySportName(_ context.Context, sportName string) (bool, error) {
	for _, m := range r.managers {
		if strings.EqualFold(m.Sport, sportName) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubManagerRepo) Count(_ context.Context) (int, error) {
	return len(r.managers), nil
}

type stubTeamRepo struct {
	teams map[int]*models.Team

	// createErr/updateErr force the matching write to fail.
	createErr error
	updateErr error
}

func newStubTeamRepo(seed ...*models.Team) *stubTeamRepo {
	r := &stubTeamRepo{teams: make(map[int]*models.Team)}
	for i, t := range seed {
		if t.ID == 0 {
			t.ID = i + 1
		}
		r.teams[t.ID] = t
	}
	return r
}

func (r *stubTeamRepo) Create(_ context.Context, team *models.Team) error {
	if r.createErr != nil {
		return r.createErr
	}
	team.ID = len(r.teams) + 1
	cp := *team
	r.teams[team.ID] = &cp
	return nil
}

func (r *stubTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTeamRepo) GetAll(_ context.Context) ([]models.Team, error) {
	out := make([]models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTeamRepo) Update(_ context.Context, team *models.Team) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	cp := *team
	r.teams[team.ID] = &cp
	return nil
}

func (r *stubTeamRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *stubTeamRepo) ExistsByName(_ context.Context, name string, excludeID int) (bool, error) {
	for _, t := range r.teams {
		if t.ID != excludeID && strings.EqualFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTeamRepo) Count(_ context.Context) (int, error) {
	return len(r.teams), nil
}

type stubStudentRepo struct {
	students map[int]*models.Student
	nextID   int
}

func newStubStudentRepo(seed ...*models.Student) *stubStudentRepo {
	r := &stubStudentRepo{students: make(map[int]*models.Student)}
	for _, s := range seed {
		r.nextID++
		if s.ID == 0 {
			s.ID = r.nextID
		}
		r.students[s.ID] = s
	}
	return r
}

func (r *stubStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.PrnUID == student.PrnUID {
			return repositories.ErrStudentPrnConflict
		}
	}
	r.nextID++
	student.ID = r.nextID
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *stubStudentRepo) GetByID(_ context.Context, id int) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubStudentRepo) GetAll(_ context.Context, managerID *int) ([]models.Student, error) {
	out := make([]models.Student, 0, len(r.students))
	for _, s := range r.students {
		if managerID != nil && s.ManagerID != *managerID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return repositories.ErrStudentNotFound
	}
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *stubStudentRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

func (r *stubStudentRepo) ExistsByPrnUID(_ context.Context, prnUID string, excludeID int) (bool, error) {
	for _, s := range r.students {
		if s.ID != excludeID && s.PrnUID == prnUID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubStudentRepo) Count(_ context.Context) (int, error) {
	return len(r.students), nil
}

type stubLinkRepo struct {
	links  map[int]*models.StudentLink
	nextID int

	// conflictsLeft makes Create fail with a token conflict this many
	// times before succeeding, for exercising the retry loop.
	conflictsLeft int
}

func newStubLinkRepo(seed ...*models.StudentLink) *stubLinkRepo {
	r := &stubLinkRepo{links: make(map[int]*models.StudentLink)}
	for _, l := range seed {
		r.nextID++
		if l.ID == 0 {
			l.ID = r.nextID
		}
		r.links[l.ID] = l
	}
	return r
}

func (r *stubLinkRepo) Create(_ context.Context, link *models.StudentLink) error {
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return repositories.ErrLinkTokenConflict
	}
	for _, l := range r.links {
		if l.Token == link.Token {
			return repositories.ErrLinkTokenConflict
		}
	}
	r.nextID++
	link.ID = r.nextID
	cp := *link
	r.links[link.ID] = &cp
	return nil
}

func (r *stubLinkRepo) GetByID(_ context.Context, id int) (*models.StudentLink, error) {
	l, ok := r.links[id]
	if !ok {
		return nil, repositories.ErrLinkNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *stubLinkRepo) GetByToken(_ context.Context, token string) (*models.StudentLink, error) {
	for _, l := range r.links {
		if l.Token == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, repositories.ErrLinkNotFound
}

func (r *stubLinkRepo) GetAll(_ context.Context, managerID *int) ([]models.StudentLink, error) {
	out := make([]models.StudentLink, 0, len(r.links))
	for _, l := range r.links {
		if managerID != nil && l.ManagerID != *managerID {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubLinkRepo) SetActive(_ context.Context, id int, active bool) error {
	l, ok := r.links[id]
	if !ok {
		return repositories.ErrLinkNotFound
	}
	l.IsActive = active
	return nil
}

func (r *stubLinkRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.links[id]; !ok {
		return repositories.ErrLinkNotFound
	}
	delete(r.links, id)
	return nil
}

type pairKey struct{ studentID, managerID int }

type stubSelectionRepo struct {
	rows   map[pairKey]*models.StudentSelection
	nextID int
}

func newStubSelectionRepo() *stubSelectionRepo {
	return &stubSelectionRepo{rows: make(map[pairKey]*models.StudentSelection)}
}

func (r *stubSelectionRepo) Upsert(_ context.Context, selection *models.StudentSelection) error {
	key := pairKey{selection.StudentID, selection.ManagerID}
	if existing, ok := r.rows[key]; ok {
		existing.IsSelected = selection.IsSelected
		*selection = *existing
		return nil
	}
	r.nextID++
	selection.ID = r.nextID
	cp := *selection
	r.rows[key] = &cp
	return nil
}

func (r *stubSelectionRepo) ListByManager(_ context.Context, managerID int) ([]models.StudentSelection, error) {
	var out []models.StudentSelection
	for _, s := range r.rows {
		if s.ManagerID == managerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type stubSportRepo struct {
	sports map[int]*models.Sport
	nextID int
}

func newStubSportRepo(seed ...*models.Sport) *stubSportRepo {
	r := &stubSportRepo{sports: make(map[int]*models.Sport)}
	for _, s := range seed {
		r.nextID++
		if s.ID == 0 {
			s.ID = r.nextID
		}
		r.sports[s.ID] = s
	}
	return r
}

func (r *stubSportRepo) Create(_ context.Context, sport *models.Sport) error {
	r.nextID++
	sport.ID = r.nextID
	cp := *sport
	r.sports[sport.ID] = &cp
	return nil
}

func (r *stubSportRepo) GetByID(_ context.Context, id int) (*models.Sport, error) {
	s, ok := r.sports[id]
	if !ok {
		return nil, repositories.ErrSportNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSportRepo) GetAll(_ context.Context) ([]models.Sport, error) {
	out := make([]models.Sport, 0, len(r.sports))
	for _, s := range r.sports {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSportRepo) Update(_ context.Context, sport *models.Sport) error {
	if _, ok := r.sports[sport.ID]; !ok {
		return repositories.ErrSportNotFound
	}
	cp := *sport
	r.sports[sport.ID] = &cp
	return nil
}

func (r *stubSportRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.sports[id]; !ok {
		return repositories.ErrSportNotFound
	}
	delete(r.sports, id)
	return nil
}

func (r *stubSportRepo) ExistsByName(_ context.Context, name string, excludeID int) (bool, error) {
	for _, s := range r.sports {
		if s.ID != excludeID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSportRepo) Count(_ context.Context) (int, error) {
	return len(r.sports), nil
}

// stubUploader records stored and deleted keys so tests can assert the
// cleanup discipline of the file-backed services.
type stubUploader struct {
	uploads []string
	deletes []string
}

func (u *stubUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (*storage.UploadResult, error) {
	u.uploads = append(u.uploads, key)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *stubUploader) Delete(_ context.Context, key string) error {
	u.deletes = append(u.deletes, key)
	return nil
}

func (u *stubUploader) GetPublicURL(key string) string {
	return "http://localhost:8080/uploads/" + key
}

// stored reports whether key was uploaded and never deleted.
func (u *stubUploader) stored(key string) bool {
	uploaded, deleted := false, false
	for _, k := range u.uploads {
		if k == key {
			uploaded = true
		}
	}
	for _, k := range u.deletes {
		if k == key {
			deleted = true
		}
	}
	return uploaded && !deleted
}

type stubEventImageRepo struct {
	images map[int]*models.EventImage
	nextID int

	createErr error
	updateErr error
}

func newStubEventImageRepo(seed ...*models.EventImage) *stubEventImageRepo {
	r := &stubEventImageRepo{images: make(map[int]*models.EventImage)}
	for _, img := range seed {
		r.nextID++
		if img.ID == 0 {
			img.ID = r.nextID
		}
		r.images[img.ID] = img
	}
	return r
}

func (r *stubEventImageRepo) Create(_ context.Context, image *models.EventImage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	image.ID = r.nextID
	cp := *image
	r.images[image.ID] = &cp
	return nil
}

func (r *stubEventImageRepo) GetByID(_ context.Context, id int) (*models.EventImage, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, repositories.ErrEventImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (r *stubEventImageRepo) GetAll(_ context.Context) ([]models.EventImage, error) {
	out := make([]models.EventImage, 0, len(r.images))
	for _, img := range r.images {
		out = append(out, *img)
	}
	return out, nil
}

func (r *stubEventImageRepo) Update(_ context.Context, image *models.EventImage) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.images[image.ID]; !ok {
		return repositories.ErrEventImageNotFound
	}
	cp := *image
	r.images[image.ID] = &cp
	return nil
}

func (r *stubEventImageRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.images[id]; !ok {
		return repositories.ErrEventImageNotFound
	}
	delete(r.images, id)
	return nil
}

type stubNoticeRepo struct {
	notices map[int]*models.Notice
	nextID  int

	createErr error
	updateErr error
}

func newStubNoticeRepo(seed ...*models.Notice) *stubNoticeRepo {
	r := &stubNoticeRepo{notices: make(map[int]*models.Notice)}
	for _, n := range seed {
		r.nextID++
		if n.ID == 0 {
			n.ID = r.nextID
		}
		r.notices[n.ID] = n
	}
	return r
}

func (r *stubNoticeRepo) Create(_ context.Context, notice *models.Notice) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	notice.ID = r.nextID
	cp := *notice
	r.notices[notice.ID] = &cp
	return nil
}

func (r *stubNoticeRepo) GetByID(_ context.Context, id int) (*models.Notice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, repositories.ErrNoticeNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *stubNoticeRepo) GetAll(_ context.Context) ([]models.Notice, error) {
	out := make([]models.Notice, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, *n)
	}
	return out, nil
}

func (r *stubNoticeRepo) Update(_ context.Context, notice *models.Notice) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.notices[notice.ID]; !ok {
		return repositories.ErrNoticeNotFound
	}
	cp := *notice
	r.notices[notice.ID] = &cp
	return nil
}

func (r *stubNoticeRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.notices[id]; !ok {
		return repositories.ErrNoticeNotFound
	}
	delete(r.notices, id)
	return nil
}

func (r *stubNoticeRepo) Count(_ context.Context) (int, error) {
	return len(r.notices), nil
}
