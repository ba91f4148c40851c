package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
	"github.com/nkalgutkar/sports-management/storage"
)

type EventImageService interface {
	CreateEventImage(ctx context.Context, input EventImageInput) (*models.EventImage, error)
	GetEventImageByID(ctx context.Context, id int) (*models.EventImage, error)
	GetAllEventImages(ctx context.Context) ([]models.EventImage, error)
	UpdateEventImage(ctx context.Context, id int, input EventImageInput) (*models.EventImage, error)
	DeleteEventImage(ctx context.Context, id int) error
}

type EventImageInput struct {
	Title        *string
	Description  *string
	DisplayOrder int
	Image        *FileInput
}

type eventImageService struct {
	imageRepo repositories.EventImageRepository
	uploader  storage.FileUploader
}

func NewEventImageService(imageRepo repositories.EventImageRepository, uploader storage.FileUploader) EventImageService {
	return &eventImageService{
		imageRepo: imageRepo,
		uploader:  uploader,
	}
}

func normalizeOptional(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *eventImageService) CreateEventImage(ctx context.Context, input EventImageInput) (*models.EventImage, error) {
	if input.DisplayOrder < 0 {
		return nil, ErrDisplayOrderInvalid
	}
	if input.Image == nil {
		return nil, ErrImageFileRequired
	}

	key, url, err := storeFile(ctx, s.uploader, keyPrefixEventImage, storage.KindImage, input.Image)
	if err != nil {
		return nil, err
	}

	image := &models.EventImage{
		Title:        normalizeOptional(input.Title),
		Description:  normalizeOptional(input.Description),
		ImageKey:     key,
		ImageURL:     url,
		DisplayOrder: input.DisplayOrder,
	}

	if err = s.imageRepo.Create(ctx, image); err != nil {
		discardFile(ctx, s.uploader, key)
		return nil, fmt.Errorf("failed to create event image: %w", err)
	}

	return s.GetEventImageByID(ctx, image.ID)
}

func (s *eventImageService) GetEventImageByID(ctx context.Context, id int) (*models.EventImage, error) {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventImageNotFound) {
			return nil, ErrEventImageNotFound
		}
		return nil, fmt.Errorf("failed to get event image %d: %w", id, err)
	}
	return image, nil
}

func (s *eventImageService) GetAllEventImages(ctx context.Context) ([]models.EventImage, error) {
	images, err := s.imageRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list event images: %w", err)
	}
	return images, nil
}

func (s *eventImageService) UpdateEventImage(ctx context.Context, id int, input EventImageInput) (*models.EventImage, error) {
	if input.DisplayOrder < 0 {
		return nil, ErrDisplayOrderInvalid
	}

	current, err := s.GetEventImageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image := &models.EventImage{
		ID:           id,
		Title:        normalizeOptional(input.Title),
		Description:  normalizeOptional(input.Description),
		ImageKey:     current.ImageKey,
		ImageURL:     current.ImageURL,
		DisplayOrder: input.DisplayOrder,
	}

	var newKey string
	if input.Image != nil {
		key, url, upErr := storeFile(ctx, s.uploader, keyPrefixEventImage, storage.KindImage, input.Image)
		if upErr != nil {
			return nil, upErr
		}
		newKey = key
		image.ImageKey = key
		image.ImageURL = url
	}

	if err = s.imageRepo.Update(ctx, image); err != nil {
		discardFile(ctx, s.uploader, newKey)
		if errors.Is(err, repositories.ErrEventImageNotFound) {
			return nil, ErrEventImageNotFound
		}
		return nil, fmt.Errorf("failed to update event image %d: %w", id, err)
	}

	if newKey != "" && current.ImageKey != newKey {
		discardFile(ctx, s.uploader, current.ImageKey)
	}

	return s.GetEventImageByID(ctx, id)
}

func (s *eventImageService) DeleteEventImage(ctx context.Context, id int) error {
	image, err := s.GetEventImageByID(ctx, id)
	if err != nil {
		return err
	}

	discardFile(ctx, s.uploader, image.ImageKey)

	if err = s.imageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventImageNotFound) {
			return ErrEventImageNotFound
		}
		return fmt.Errorf("failed to delete event image %d: %w", id, err)
	}
	return nil
}
