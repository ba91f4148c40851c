package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var ErrNoticeNotFound = errors.New("notice not found")

type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	GetByID(ctx context.Context, id int) (*models.Notice, error)
	GetAll(ctx context.Context) ([]models.Notice, error)
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresNoticeRepository struct {
	db *sql.DB
}

func NewPostgresNoticeRepository(db *sql.DB) NoticeRepository {
	return &postgresNoticeRepository{db: db}
}

const noticeColumns = `id, title, description, document_key, document_url, schedule_image_key, schedule_image_url, notice_date, created_at, updated_at`

func scanNotice(row rowScanner, n *models.Notice) error {
	return row.Scan(
		&n.ID, &n.Title, &n.Description, &n.DocumentKey, &n.DocumentURL,
		&n.ScheduleImageKey, &n.ScheduleImageURL, &n.NoticeDate, &n.CreatedAt, &n.UpdatedAt,
	)
}

func (r *postgresNoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	query := `INSERT INTO notices (title, description, document_key, document_url, schedule_image_key, schedule_image_url, notice_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		notice.Title, notice.Description, notice.DocumentKey, notice.DocumentURL,
		notice.ScheduleImageKey, notice.ScheduleImageURL, notice.NoticeDate,
	).Scan(&notice.ID, &notice.CreatedAt, &notice.UpdatedAt)
}

func (r *postgresNoticeRepository) GetByID(ctx context.Context, id int) (*models.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices WHERE id = $1`

	var notice models.Notice
	err := scanNotice(r.db.QueryRowContext(ctx, query, id), &notice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *postgresNoticeRepository) GetAll(ctx context.Context) ([]models.Notice, error) {
	query := `SELECT ` + noticeColumns + ` FROM notices ORDER BY notice_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := make([]models.Notice, 0)
	for rows.Next() {
		var notice models.Notice
		if scanErr := scanNotice(rows, &notice); scanErr != nil {
			return nil, scanErr
		}
		notices = append(notices, notice)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *postgresNoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	query := `UPDATE notices
	          SET title = $1, description = $2, document_key = $3, document_url = $4,
	              schedule_image_key = $5, schedule_image_url = $6, notice_date = $7, updated_at = NOW()
	          WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		notice.Title, notice.Description, notice.DocumentKey, notice.DocumentURL,
		notice.ScheduleImageKey, notice.ScheduleImageURL, notice.NoticeDate, notice.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrNoticeNotFound)
}

func (r *postgresNoticeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrNoticeNotFound)
}

func (r *postgresNoticeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notices`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
