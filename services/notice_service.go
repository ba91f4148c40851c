package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
	"github.com/nkalgutkar/sports-management/storage"
)

type NoticeService interface {
	CreateNotice(ctx context.Context, input NoticeInput) (*models.Notice, error)
	GetNoticeByID(ctx context.Context, id int) (*models.Notice, error)
	GetAllNotices(ctx context.Context) ([]models.Notice, error)
	UpdateNotice(ctx context.Context, id int, input NoticeInput) (*models.Notice, error)
	DeleteNotice(ctx context.Context, id int) error
}

type NoticeInput struct {
	Title         string
	Description   string
	NoticeDate    string
	Document      *FileInput
	ScheduleImage *FileInput
}

type noticeService struct {
	noticeRepo repositories.NoticeRepository
	uploader   storage.FileUploader
}

func NewNoticeService(noticeRepo repositories.NoticeRepository, uploader storage.FileUploader) NoticeService {
	return &noticeService{
		noticeRepo: noticeRepo,
		uploader:   uploader,
	}
}

func (s *noticeService) validate(input *NoticeInput) (time.Time, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" {
		return time.Time{}, ErrTitleRequired
	}
	if input.Description == "" {
		return time.Time{}, ErrDescriptionRequired
	}
	date, err := parseDate(input.NoticeDate)
	if err != nil {
		return time.Time{}, ErrNoticeDateInvalid
	}
	return date, nil
}

// storeNoticeFiles persists the optional document and schedule image.
// On any failure every file stored so far is removed before returning.
func (s *noticeService) storeNoticeFiles(ctx context.Context, input *NoticeInput, notice *models.Notice) (stored []string, err error) {
	defer func() {
		if err != nil {
			for _, key := range stored {
				discardFile(ctx, s.uploader, key)
			}
		}
	}()

	if input.Document != nil {
		key, url, upErr := storeFile(ctx, s.uploader, keyPrefixNoticeDocument, storage.KindDocument, input.Document)
		if upErr != nil {
			return stored, upErr
		}
		stored = append(stored, key)
		notice.DocumentKey = &key
		notice.DocumentURL = &url
	}

	if input.ScheduleImage != nil {
		key, url, upErr := storeFile(ctx, s.uploader, keyPrefixNoticeSchedule, storage.KindImage, input.ScheduleImage)
		if upErr != nil {
			return stored, upErr
		}
		stored = append(stored, key)
		notice.ScheduleImageKey = &key
		notice.ScheduleImageURL = &url
	}

	return stored, nil
}

func (s *noticeService) CreateNotice(ctx context.Context, input NoticeInput) (*models.Notice, error) {
	date, err := s.validate(&input)
	if err != nil {
		return nil, err
	}

	notice := &models.Notice{
		Title:       input.Title,
		Description: input.Description,
		NoticeDate:  date,
	}

	stored, err := s.storeNoticeFiles(ctx, &input, notice)
	if err != nil {
		return nil, err
	}

	if err = s.noticeRepo.Create(ctx, notice); err != nil {
		for _, key := range stored {
			discardFile(ctx, s.uploader, key)
		}
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}

	return s.GetNoticeByID(ctx, notice.ID)
}

func (s *noticeService) GetNoticeByID(ctx context.Context, id int) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to get notice %d: %w", id, err)
	}
	return notice, nil
}

func (s *noticeService) GetAllNotices(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.noticeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

func (s *noticeService) UpdateNotice(ctx context.Context, id int, input NoticeInput) (*models.Notice, error) {
	date, err := s.validate(&input)
	if err != nil {
		return nil, err
	}

	current, err := s.GetNoticeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notice := &models.Notice{
		ID:               id,
		Title:            input.Title,
		Description:      input.Description,
		NoticeDate:       date,
		DocumentKey:      current.DocumentKey,
		DocumentURL:      current.DocumentURL,
		ScheduleImageKey: current.ScheduleImageKey,
		ScheduleImageURL: current.ScheduleImageURL,
	}

	stored, err := s.storeNoticeFiles(ctx, &input, notice)
	if err != nil {
		return nil, err
	}

	if err = s.noticeRepo.Update(ctx, notice); err != nil {
		for _, key := range stored {
			discardFile(ctx, s.uploader, key)
		}
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to update notice %d: %w", id, err)
	}

	// Replaced files are unreferenced once the row is updated.
	if input.Document != nil && current.DocumentKey != nil {
		discardFile(ctx, s.uploader, *current.DocumentKey)
	}
	if input.ScheduleImage != nil && current.ScheduleImageKey != nil {
		discardFile(ctx, s.uploader, *current.ScheduleImageKey)
	}

	return s.GetNoticeByID(ctx, id)
}

func (s *noticeService) DeleteNotice(ctx context.Context, id int) error {
	notice, err := s.GetNoticeByID(ctx, id)
	if err != nil {
		return err
	}

	if notice.DocumentKey != nil {
		discardFile(ctx, s.uploader, *notice.DocumentKey)
	}
	if notice.ScheduleImageKey != nil {
		discardFile(ctx, s.uploader, *notice.ScheduleImageKey)
	}

	if err = s.noticeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return ErrNoticeNotFound
		}
		return fmt.Errorf("failed to delete notice %d: %w", id, err)
	}
	return nil
}
