package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nkalgutkar/sports-management/models"
)

var ErrEventImageNotFound = errors.New("event image not found")

type EventImageRepository interface {
	Create(ctx context.Context, image *models.EventImage) error
	GetByID(ctx context.Context, id int) (*models.EventImage, error)
	GetAll(ctx context.Context) ([]models.EventImage, error)
	Update(ctx context.Context, image *models.EventImage) error
	Delete(ctx context.Context, id int) error
}

type postgresEventImageRepository struct {
	db *sql.DB
}

func NewPostgresEventImageRepository(db *sql.DB) EventImageRepository {
	return &postgresEventImageRepository{db: db}
}

const eventImageColumns = `id, title, description, image_key, image_url, display_order, created_at, updated_at`

func scanEventImage(row rowScanner, e *models.EventImage) error {
	return row.Scan(
		&e.ID, &e.Title, &e.Description, &e.ImageKey, &e.ImageURL,
		&e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *postgresEventImageRepository) Create(ctx context.Context, image *models.EventImage) error {
	query := `INSERT INTO event_images (title, description, image_key, image_url, display_order)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		image.Title, image.Description, image.ImageKey, image.ImageURL, image.DisplayOrder,
	).Scan(&image.ID, &image.CreatedAt, &image.UpdatedAt)
}

func (r *postgresEventImageRepository) GetByID(ctx context.Context, id int) (*models.EventImage, error) {
	query := `SELECT ` + eventImageColumns + ` FROM event_images WHERE id = $1`

	var image models.EventImage
	err := scanEventImage(r.db.QueryRowContext(ctx, query, id), &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *postgresEventImageRepository) GetAll(ctx context.Context) ([]models.EventImage, error) {
	query := `SELECT ` + eventImageColumns + ` FROM event_images ORDER BY display_order ASC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]models.EventImage, 0)
	for rows.Next() {
		var image models.EventImage
		if scanErr := scanEventImage(rows, &image); scanErr != nil {
			return nil, scanErr
		}
		images = append(images, image)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *postgresEventImageRepository) Update(ctx context.Context, image *models.EventImage) error {
	query := `UPDATE event_images
	          SET title = $1, description = $2, image_key = $3, image_url = $4, display_order = $5, updated_at = NOW()
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		image.Title, image.Description, image.ImageKey, image.ImageURL, image.DisplayOrder, image.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventImageNotFound)
}

func (r *postgresEventImageRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM event_images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventImageNotFound)
}
