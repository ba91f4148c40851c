package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var (
	ErrLinkNotFound       = errors.New("student link not found")
	ErrLinkTokenConflict  = errors.New("student link token conflict")
	ErrLinkManagerInvalid = errors.New("student link references an unknown manager")
)

type LinkRepository interface {
	Create(ctx context.Context, link *models.StudentLink) error
	GetByID(ctx context.Context, id int) (*models.StudentLink, error)
	GetByToken(ctx context.Context, token string) (*models.StudentLink, error)
	GetAll(ctx context.Context, managerID *int) ([]models.StudentLink, error)
	SetActive(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
}

type postgresLinkRepository struct {
	db *sql.DB
}

func NewPostgresLinkRepository(db *sql.DB) LinkRepository {
	return &postgresLinkRepository{db: db}
}

const linkColumns = `id, manager_id, token, is_active, created_at, updated_at`

func scanLink(row rowScanner, l *models.StudentLink) error {
	return row.Scan(&l.ID, &l.ManagerID, &l.Token, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
}

func (r *postgresLinkRepository) Create(ctx context.Context, link *models.StudentLink) error {
	query := `INSERT INTO student_links (manager_id, token, is_active)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, link.ManagerID, link.Token, link.IsActive).
		Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "student_links_token_key") {
			return ErrLinkTokenConflict
		}
		if foreignKeyViolation(err) {
			return ErrLinkManagerInvalid
		}
		return err
	}
	return nil
}

func (r *postgresLinkRepository) GetByID(ctx context.Context, id int) (*models.StudentLink, error) {
	query := `SELECT ` + linkColumns + ` FROM student_links WHERE id = $1`

	var link models.StudentLink
	err := scanLink(r.db.QueryRowContext(ctx, query, id), &link)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// GetByToken also resolves the manager name so public link metadata can
// show who the registration goes to.
func (r *postgresLinkRepository) GetByToken(ctx context.Context, token string) (*models.StudentLink, error) {
	query := `SELECT l.id, l.manager_id, l.token, l.is_active, l.created_at, l.updated_at, m.name
	          FROM student_links l
	          JOIN managers m ON m.id = l.manager_id
	          WHERE l.token = $1`

	var link models.StudentLink
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&link.ID, &link.ManagerID, &link.Token, &link.IsActive,
		&link.CreatedAt, &link.UpdatedAt, &link.ManagerName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *postgresLinkRepository) GetAll(ctx context.Context, managerID *int) ([]models.StudentLink, error) {
	query := `SELECT ` + linkColumns + ` FROM student_links ORDER BY created_at DESC`
	args := []any{}
	if managerID != nil {
		query = `SELECT ` + linkColumns + ` FROM student_links WHERE manager_id = $1 ORDER BY created_at DESC`
		args = append(args, *managerID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]models.StudentLink, 0)
	for rows.Next() {
		var link models.StudentLink
		if scanErr := scanLink(rows, &link); scanErr != nil {
			return nil, scanErr
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *postgresLinkRepository) SetActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE student_links SET is_active = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrLinkNotFound)
}

func (r *postgresLinkRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM student_links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrLinkNotFound)
}
