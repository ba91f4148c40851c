package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var (
	ErrManagerNotFound      = errors.New("manager not found")
	ErrManagerEmailConflict = errors.New("manager email conflict")
	ErrManagerTeamInvalid   = errors.New("manager references an unknown team")
)

type ManagerRepository interface {
	Create(ctx context.Context, manager *models.Manager) error
	GetByID(ctx context.Context, id int) (*models.Manager, error)
	GetByEmailAndContact(ctx context.Context, email, contact string) (*models.Manager, error)
	GetAll(ctx context.Context) ([]models.Manager, error)
	Update(ctx context.Context, manager *models.Manager) error
	Delete(ctx context.Context, id int) error
	ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error)
	ExistsBySportName(ctx context.Context, sportName string) (bool, error)
	Count(ctx context.Context) (int, error)
}

type postgresManagerRepository struct {
	db *sql.DB
}

func NewPostgresManagerRepository(db *sql.DB) ManagerRepository {
	return &postgresManagerRepository{db: db}
}

const managerColumns = `id, name, department, sport, contact, email, student_count, team_id, created_at, updated_at`

func scanManager(row rowScanner, m *models.Manager) error {
	return row.Scan(
		&m.ID, &m.Name, &m.Department, &m.Sport, &m.Contact, &m.Email,
		&m.StudentCount, &m.TeamID, &m.CreatedAt, &m.UpdatedAt,
	)
}

func (r *postgresManagerRepository) Create(ctx context.Context, manager *models.Manager) error {
	query := `INSERT INTO managers (name, department, sport, contact, email, student_count, team_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		manager.Name, manager.Department, manager.Sport, manager.Contact,
		manager.Email, manager.StudentCount, manager.TeamID,
	).Scan(&manager.ID, &manager.CreatedAt, &manager.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "managers_email_key") {
			return ErrManagerEmailConflict
		}
		if foreignKeyViolation(err) {
			return ErrManagerTeamInvalid
		}
		return err
	}
	return nil
}

func (r *postgresManagerRepository) GetByID(ctx context.Context, id int) (*models.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers WHERE id = $1`

	var manager models.Manager
	err := scanManager(r.db.QueryRowContext(ctx, query, id), &manager)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrManagerNotFound
		}
		return nil, err
	}
	return &manager, nil
}

func (r *postgresManagerRepository) GetByEmailAndContact(ctx context.Context, email, contact string) (*models.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers WHERE email = $1 AND contact = $2`

	var manager models.Manager
	err := scanManager(r.db.QueryRowContext(ctx, query, email, contact), &manager)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrManagerNotFound
		}
		return nil, err
	}
	return &manager, nil
}

func (r *postgresManagerRepository) GetAll(ctx context.Context) ([]models.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	managers := make([]models.Manager, 0)
	for rows.Next() {
		var manager models.Manager
		if scanErr := scanManager(rows, &manager); scanErr != nil {
			return nil, scanErr
		}
		managers = append(managers, manager)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return managers, nil
}

func (r *postgresManagerRepository) Update(ctx context.Context, manager *models.Manager) error {
	query := `UPDATE managers
	          SET name = $1, department = $2, sport = $3, contact = $4, email = $5,
	              student_count = $6, team_id = $7, updated_at = NOW()
	          WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		manager.Name, manager.Department, manager.Sport, manager.Contact,
		manager.Email, manager.StudentCount, manager.TeamID, manager.ID,
	)
	if err != nil {
		if uniqueViolation(err, "managers_email_key") {
			return ErrManagerEmailConflict
		}
		if foreignKeyViolation(err) {
			return ErrManagerTeamInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrManagerNotFound)
}

func (r *postgresManagerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrManagerNotFound)
}

func (r *postgresManagerRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM managers WHERE email = $1 AND id <> $2)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresManagerRepository) ExistsBySportName(ctx context.Context, sportName string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM managers WHERE sport = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, sportName).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresManagerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM managers`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
