package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

func newLinkServiceAt(now string, linkRepo *stubLinkRepo, managerRepo *stubManagerRepo, studentRepo *stubStudentRepo) *linkService {
	return &linkService{
		linkRepo:    linkRepo,
		managerRepo: managerRepo,
		studentRepo: studentRepo,
		now:         func() time.Time { return date(now) },
	}
}

func TestCreateLink(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	svc := NewLinkService(newStubLinkRepo(), managerRepo, newStubStudentRepo())

	link, err := svc.CreateLink(context.Background(), 1)
	if err != nil {
		t.Fatalf("CreateLink: %v", err)
	}
	if len(link.Token) != linkTokenLength*2 {
		t.Errorf("token length = %d, want %d", len(link.Token), linkTokenLength*2)
	}
	if !link.IsActive {
		t.Error("new link is not active")
	}
	if link.ManagerID != 1 {
		t.Errorf("manager id = %d, want 1", link.ManagerID)
	}
}

func TestCreateLink_UnknownManager(t *testing.T) {
	svc := NewLinkService(newStubLinkRepo(), newStubManagerRepo(), newStubStudentRepo())

	if _, err := svc.CreateLink(context.Background(), 5); !errors.Is(err, ErrManagerNotFound) {
		t.Errorf("CreateLink: got %v, want %v", err, ErrManagerNotFound)
	}
}

func TestCreateLink_RetriesOnTokenConflict(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	linkRepo := newStubLinkRepo()
	linkRepo.conflictsLeft = tokenMaxAttempts - 1
	svc := NewLinkService(linkRepo, managerRepo, newStubStudentRepo())

	link, err := svc.CreateLink(context.Background(), 1)
	if err != nil {
		t.Fatalf("CreateLink: %v", err)
	}
	if link.Token == "" {
		t.Error("empty token after retries")
	}
}

func TestCreateLink_GivesUpAfterMaxAttempts(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	linkRepo := newStubLinkRepo()
	linkRepo.conflictsLeft = tokenMaxAttempts
	svc := NewLinkService(linkRepo, managerRepo, newStubStudentRepo())

	if _, err := svc.CreateLink(context.Background(), 1); !errors.Is(err, ErrLinkTokenGeneration) {
		t.Errorf("CreateLink: got %v, want %v", err, ErrLinkTokenGeneration)
	}
}

func TestGetLinkByToken_InactiveBehavesAsMissing(t *testing.T) {
	linkRepo := newStubLinkRepo(
		&models.StudentLink{ManagerID: 1, Token: "active-token", IsActive: true},
		&models.StudentLink{ManagerID: 1, Token: "revoked-token", IsActive: false},
	)
	svc := NewLinkService(linkRepo, newStubManagerRepo(), newStubStudentRepo())

	if _, err := svc.GetLinkByToken(context.Background(), "active-token"); err != nil {
		t.Errorf("active token: %v", err)
	}
	if _, err := svc.GetLinkByToken(context.Background(), "revoked-token"); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("revoked token: got %v, want %v", err, ErrLinkNotFound)
	}
	if _, err := svc.GetLinkByToken(context.Background(), "no-such-token"); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("unknown token: got %v, want %v", err, ErrLinkNotFound)
	}
	if _, err := svc.GetLinkByToken(context.Background(), "  "); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("blank token: got %v, want %v", err, ErrLinkNotFound)
	}
}

func TestSetLinkActive(t *testing.T) {
	linkRepo := newStubLinkRepo(&models.StudentLink{ManagerID: 1, Token: "tok", IsActive: true})
	svc := NewLinkService(linkRepo, newStubManagerRepo(), newStubStudentRepo())

	link, err := svc.SetLinkActive(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("SetLinkActive: %v", err)
	}
	if link.IsActive {
		t.Error("link still active after revoke")
	}

	if _, err := svc.SetLinkActive(context.Background(), 9, true); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("missing link: got %v, want %v", err, ErrLinkNotFound)
	}
}

// vanishingLinkRepo updates fine but cannot find the row afterwards, as if
// it was deleted between the two statements.
type vanishingLinkRepo struct {
	*stubLinkRepo
}

func (r *vanishingLinkRepo) GetByID(_ context.Context, _ int) (*models.StudentLink, error) {
	return nil, repositories.ErrLinkNotFound
}

func TestSetLinkActive_RowDeletedBetweenUpdateAndReload(t *testing.T) {
	linkRepo := newStubLinkRepo(&models.StudentLink{ManagerID: 1, Token: "tok", IsActive: true})
	svc := &linkService{
		linkRepo:    &vanishingLinkRepo{linkRepo},
		managerRepo: newStubManagerRepo(),
		studentRepo: newStubStudentRepo(),
		now:         time.Now,
	}

	if _, err := svc.SetLinkActive(context.Background(), 1, false); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("got %v, want %v", err, ErrLinkNotFound)
	}
}

func TestSubmitStudent_BindsToLinkManager(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	linkRepo := newStubLinkRepo(&models.StudentLink{ManagerID: 1, Token: "tok", IsActive: true})
	studentRepo := newStubStudentRepo()
	svc := newLinkServiceAt("2026-08-29", linkRepo, managerRepo, studentRepo)

	student, err := svc.SubmitStudent(context.Background(), LinkSubmissionInput{
		Token:     "tok",
		Name:      "R. Patil",
		PrnUID:    "PRN-2001",
		Contact:   "9123456780",
		BirthDate: "2006-02-10",
	})
	if err != nil {
		t.Fatalf("SubmitStudent: %v", err)
	}
	if student.ManagerID != 1 {
		t.Errorf("manager id = %d, want 1", student.ManagerID)
	}
	if student.LinkToken == nil || *student.LinkToken != "tok" {
		t.Errorf("link token = %v, want tok", student.LinkToken)
	}
	if student.Age != 20 {
		t.Errorf("age = %d, want 20", student.Age)
	}
}

func TestSubmitStudent_InactiveLink(t *testing.T) {
	linkRepo := newStubLinkRepo(&models.StudentLink{ManagerID: 1, Token: "tok", IsActive: false})
	svc := NewLinkService(linkRepo, newStubManagerRepo(), newStubStudentRepo())

	_, err := svc.SubmitStudent(context.Background(), LinkSubmissionInput{
		Token:     "tok",
		Name:      "R. Patil",
		PrnUID:    "PRN-2001",
		Contact:   "9123456780",
		BirthDate: "2006-02-10",
	})
	if !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("SubmitStudent: got %v, want %v", err, ErrLinkNotFound)
	}
}

func TestSubmitStudent_DuplicatePrn(t *testing.T) {
	managerRepo := newStubManagerRepo(&models.Manager{Name: "M", Email: "m@x.co"})
	linkRepo := newStubLinkRepo(&models.StudentLink{ManagerID: 1, Token: "tok", IsActive: true})
	studentRepo := newStubStudentRepo(&models.Student{Name: "X", PrnUID: "PRN-2001", ManagerID: 1})
	svc := newLinkServiceAt("2026-08-29", linkRepo, managerRepo, studentRepo)

	_, err := svc.SubmitStudent(context.Background(), LinkSubmissionInput{
		Token:     "tok",
		Name:      "R. Patil",
		PrnUID:    "PRN-2001",
		Contact:   "9123456780",
		BirthDate: "2006-02-10",
	})
	if !errors.Is(err, ErrStudentPrnConflict) {
		t.Errorf("SubmitStudent: got %v, want %v", err, ErrStudentPrnConflict)
	}
}
