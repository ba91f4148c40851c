package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var (
	ErrCoachNotFound       = errors.New("coach not found")
	ErrCoachManagerInvalid = errors.New("coach references an unknown manager")
)

type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	GetByID(ctx context.Context, id int) (*models.Coach, error)
	GetAll(ctx context.Context, managerID *int) ([]models.Coach, error)
	Update(ctx context.Context, coach *models.Coach) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresCoachRepository struct {
	db *sql.DB
}

func NewPostgresCoachRepository(db *sql.DB) CoachRepository {
	return &postgresCoachRepository{db: db}
}

const coachColumns = `id, name, contact, email, specialization, manager_id, created_at, updated_at`

func scanCoach(row rowScanner, c *models.Coach) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Contact, &c.Email, &c.Specialization,
		&c.ManagerID, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *postgresCoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `INSERT INTO coaches (name, contact, email, specialization, manager_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		coach.Name, coach.Contact, coach.Email, coach.Specialization, coach.ManagerID,
	).Scan(&coach.ID, &coach.CreatedAt, &coach.UpdatedAt)
	if err != nil {
		if foreignKeyViolation(err) {
			return ErrCoachManagerInvalid
		}
		return err
	}
	return nil
}

func (r *postgresCoachRepository) GetByID(ctx context.Context, id int) (*models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches WHERE id = $1`

	var coach models.Coach
	err := scanCoach(r.db.QueryRowContext(ctx, query, id), &coach)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *postgresCoachRepository) GetAll(ctx context.Context, managerID *int) ([]models.Coach, error) {
	query := `SELECT ` + coachColumns + ` FROM coaches ORDER BY created_at DESC`
	args := []any{}
	if managerID != nil {
		query = `SELECT ` + coachColumns + ` FROM coaches WHERE manager_id = $1 ORDER BY created_at DESC`
		args = append(args, *managerID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coaches := make([]models.Coach, 0)
	for rows.Next() {
		var coach models.Coach
		if scanErr := scanCoach(rows, &coach); scanErr != nil {
			return nil, scanErr
		}
		coaches = append(coaches, coach)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *postgresCoachRepository) Update(ctx context.Context, coach *models.Coach) error {
	query := `UPDATE coaches
	          SET name = $1, contact = $2, email = $3, specialization = $4, manager_id = $5, updated_at = NOW()
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		coach.Name, coach.Contact, coach.Email, coach.Specialization, coach.ManagerID, coach.ID,
	)
	if err != nil {
		if foreignKeyViolation(err) {
			return ErrCoachManagerInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrCoachNotFound)
}

func (r *postgresCoachRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCoachNotFound)
}

func (r *postgresCoachRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coaches`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
