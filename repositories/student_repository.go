package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentPrnConflict    = errors.New("student prn_uid conflict")
	ErrStudentManagerInvalid = errors.New("student references an unknown manager")
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int) (*models.Student, error)
	GetAll(ctx context.Context, managerID *int) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int) error
	ExistsByPrnUID(ctx context.Context, prnUID string, excludeID int) (bool, error)
	Count(ctx context.Context) (int, error)
}

type postgresStudentRepository struct {
	db *sql.DB
}

func NewPostgresStudentRepository(db *sql.DB) StudentRepository {
	return &postgresStudentRepository{db: db}
}

const studentColumns = `id, name, prn_uid, contact, email, address, birth_date, age, manager_id, link_token, created_at, updated_at`

func scanStudent(row rowScanner, s *models.Student) error {
	return row.Scan(
		&s.ID, &s.Name, &s.PrnUID, &s.Contact, &s.Email, &s.Address,
		&s.BirthDate, &s.Age, &s.ManagerID, &s.LinkToken, &s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *postgresStudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `INSERT INTO students (name, prn_uid, contact, email, address, birth_date, age, manager_id, link_token)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		student.Name, student.PrnUID, student.Contact, student.Email, student.Address,
		student.BirthDate, student.Age, student.ManagerID, student.LinkToken,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "students_prn_uid_key") {
			return ErrStudentPrnConflict
		}
		if foreignKeyViolation(err) {
			return ErrStudentManagerInvalid
		}
		return err
	}
	return nil
}

func (r *postgresStudentRepository) GetByID(ctx context.Context, id int) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var student models.Student
	err := scanStudent(r.db.QueryRowContext(ctx, query, id), &student)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *postgresStudentRepository) GetAll(ctx context.Context, managerID *int) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`
	args := []any{}
	if managerID != nil {
		query = `SELECT ` + studentColumns + ` FROM students WHERE manager_id = $1 ORDER BY created_at DESC`
		args = append(args, *managerID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		if scanErr := scanStudent(rows, &student); scanErr != nil {
			return nil, scanErr
		}
		students = append(students, student)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *postgresStudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `UPDATE students
	          SET name = $1, prn_uid = $2, contact = $3, email = $4, address = $5,
	              birth_date = $6, age = $7, manager_id = $8, updated_at = NOW()
	          WHERE id = $9`

	result, err := r.db.ExecContext(ctx, query,
		student.Name, student.PrnUID, student.Contact, student.Email, student.Address,
		student.BirthDate, student.Age, student.ManagerID, student.ID,
	)
	if err != nil {
		if uniqueViolation(err, "students_prn_uid_key") {
			return ErrStudentPrnConflict
		}
		if foreignKeyViolation(err) {
			return ErrStudentManagerInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrStudentNotFound)
}

func (r *postgresStudentRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStudentNotFound)
}

func (r *postgresStudentRepository) ExistsByPrnUID(ctx context.Context, prnUID string, excludeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM students WHERE prn_uid = $1 AND id <> $2)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, prnUID, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresStudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
