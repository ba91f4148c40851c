package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var ErrSelectionRefInvalid = errors.New("selection references an unknown student or manager")

type SelectionRepository interface {
	Upsert(ctx context.Context, selection *models.StudentSelection) error
	ListByManager(ctx context.Context, managerID int) ([]models.StudentSelection, error)
}

type postgresSelectionRepository struct {
	db *sql.DB
}

func NewPostgresSelectionRepository(db *sql.DB) SelectionRepository {
	return &postgresSelectionRepository{db: db}
}

// Upsert inserts the (student, manager) row or flips its flag in place.
// The unique pair constraint makes the operation race-free.
func (r *postgresSelectionRepository) Upsert(ctx context.Context, selection *models.StudentSelection) error {
	query := `INSERT INTO student_selections (student_id, manager_id, is_selected)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (student_id, manager_id)
	          DO UPDATE SET is_selected = EXCLUDED.is_selected, updated_at = NOW()
	          RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		selection.StudentID, selection.ManagerID, selection.IsSelected,
	).Scan(&selection.ID, &selection.CreatedAt, &selection.UpdatedAt)
	if err != nil {
		if foreignKeyViolation(err) {
			return ErrSelectionRefInvalid
		}
		return err
	}
	return nil
}

func (r *postgresSelectionRepository) ListByManager(ctx context.Context, managerID int) ([]models.StudentSelection, error) {
	query := `SELECT sel.id, sel.student_id, sel.manager_id, sel.is_selected, sel.created_at, sel.updated_at,
	                 ` + prefixedStudentColumns("st") + `
	          FROM student_selections sel
	          JOIN students st ON st.id = sel.student_id
	          WHERE sel.manager_id = $1
	          ORDER BY sel.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	selections := make([]models.StudentSelection, 0)
	for rows.Next() {
		var sel models.StudentSelection
		var student models.Student
		if scanErr := rows.Scan(
			&sel.ID, &sel.StudentID, &sel.ManagerID, &sel.IsSelected, &sel.CreatedAt, &sel.UpdatedAt,
			&student.ID, &student.Name, &student.PrnUID, &student.Contact, &student.Email, &student.Address,
			&student.BirthDate, &student.Age, &student.ManagerID, &student.LinkToken,
			&student.CreatedAt, &student.UpdatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		sel.Student = &student
		selections = append(selections, sel)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return selections, nil
}

func prefixedStudentColumns(alias string) string {
	return alias + `.id, ` + alias + `.name, ` + alias + `.prn_uid, ` + alias + `.contact, ` +
		alias + `.email, ` + alias + `.address, ` + alias + `.birth_date, ` + alias + `.age, ` +
		alias + `.manager_id, ` + alias + `.link_token, ` + alias + `.created_at, ` + alias + `.updated_at`
}
