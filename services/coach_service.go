package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

type CoachService interface {
	CreateCoach(ctx context.Context, input CoachInput) (*models.Coach, error)
	GetCoachByID(ctx context.Context, id int) (*models.Coach, error)
	GetAllCoaches(ctx context.Context, managerID *int) ([]models.Coach, error)
	UpdateCoach(ctx context.Context, id int, input CoachInput) (*models.Coach, error)
	DeleteCoach(ctx context.Context, id int) error
}

type CoachInput struct {
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
	ManagerID      int     `json:"managerId"`
}

type coachService struct {
	coachRepo   repositories.CoachRepository
	managerRepo repositories.ManagerRepository
}

func NewCoachService(coachRepo repositories.CoachRepository, managerRepo repositories.ManagerRepository) CoachService {
	return &coachService{
		coachRepo:   coachRepo,
		managerRepo: managerRepo,
	}
}

func (s *coachService) validate(input *CoachInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Contact == "" {
		return ErrContactRequired
	}
	if input.Email != nil && *input.Email != "" && !isValidEmail(strings.TrimSpace(*input.Email)) {
		return ErrEmailInvalid
	}
	return nil
}

func (s *coachService) checkManager(ctx context.Context, managerID int) error {
	if _, err := s.managerRepo.GetByID(ctx, managerID); err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return ErrManagerNotFound
		}
		return fmt.Errorf("failed to check manager %d: %w", managerID, err)
	}
	return nil
}

func (s *coachService) CreateCoach(ctx context.Context, input CoachInput) (*models.Coach, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	if err := s.checkManager(ctx, input.ManagerID); err != nil {
		return nil, err
	}

	coach := &models.Coach{
		Name:           input.Name,
		Contact:        input.Contact,
		Email:          input.Email,
		Specialization: input.Specialization,
		ManagerID:      input.ManagerID,
	}

	if err := s.coachRepo.Create(ctx, coach); err != nil {
		if errors.Is(err, repositories.ErrCoachManagerInvalid) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}

	return s.GetCoachByID(ctx, coach.ID)
}

func (s *coachService) GetCoachByID(ctx context.Context, id int) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach %d: %w", id, err)
	}
	return coach, nil
}

func (s *coachService) GetAllCoaches(ctx context.Context, managerID *int) ([]models.Coach, error) {
	coaches, err := s.coachRepo.GetAll(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	return coaches, nil
}

func (s *coachService) UpdateCoach(ctx context.Context, id int, input CoachInput) (*models.Coach, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	if _, err := s.GetCoachByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkManager(ctx, input.ManagerID); err != nil {
		return nil, err
	}

	coach := &models.Coach{
		ID:             id,
		Name:           input.Name,
		Contact:        input.Contact,
		Email:          input.Email,
		Specialization: input.Specialization,
		ManagerID:      input.ManagerID,
	}

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCoachNotFound):
			return nil, ErrCoachNotFound
		case errors.Is(err, repositories.ErrCoachManagerInvalid):
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to update coach %d: %w", id, err)
	}

	return s.GetCoachByID(ctx, id)
}

func (s *coachService) DeleteCoach(ctx context.Context, id int) error {
	if err := s.coachRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return ErrCoachNotFound
		}
		return fmt.Errorf("failed to delete coach %d: %w", id, err)
	}
	return nil
}
