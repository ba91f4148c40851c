package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

type SportService interface {
	CreateSport(ctx context.Context, input SportInput) (*models.Sport, error)
	GetSportByID(ctx context.Context, id int) (*models.Sport, error)
	GetAllSports(ctx context.Context) ([]models.Sport, error)
	UpdateSport(ctx context.Context, id int, input SportInput) (*models.Sport, error)
	DeleteSport(ctx context.Context, id int) error
}

type SportInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type sportService struct {
	sportRepo   repositories.SportRepository
	managerRepo repositories.ManagerRepository
}

func NewSportService(sportRepo repositories.SportRepository, managerRepo repositories.ManagerRepository) SportService {
	return &sportService{
		sportRepo:   sportRepo,
		managerRepo: managerRepo,
	}
}

func (s *sportService) CreateSport(ctx context.Context, input SportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.sportRepo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check sport name: %w", err)
	}
	if exists {
		return nil, ErrSportNameConflict
	}

	sport := &models.Sport{
		Name:        name,
		Description: input.Description,
	}

	if err = s.sportRepo.Create(ctx, sport); err != nil {
		if errors.Is(err, repositories.ErrSportNameConflict) {
			return nil, ErrSportNameConflict
		}
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}

	return s.GetSportByID(ctx, sport.ID)
}

func (s *sportService) GetSportByID(ctx context.Context, id int) (*models.Sport, error) {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}
	return sport, nil
}

func (s *sportService) GetAllSports(ctx context.Context) ([]models.Sport, error) {
	sports, err := s.sportRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	return sports, nil
}

func (s *sportService) UpdateSport(ctx context.Context, id int, input SportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.sportRepo.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check sport name: %w", err)
	}
	if exists {
		return nil, ErrSportNameConflict
	}

	sport := &models.Sport{
		ID:          id,
		Name:        name,
		Description: input.Description,
	}

	if err = s.sportRepo.Update(ctx, sport); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return nil, ErrSportNotFound
		case errors.Is(err, repositories.ErrSportNameConflict):
			return nil, ErrSportNameConflict
		}
		return nil, fmt.Errorf("failed to update sport %d: %w", id, err)
	}

	return s.GetSportByID(ctx, id)
}

// DeleteSport refuses to delete a sport any manager still references by
// name; managers.sport is free text, so there is no FK to enforce this.
func (s *sportService) DeleteSport(ctx context.Context, id int) error {
	sport, err := s.GetSportByID(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.managerRepo.ExistsBySportName(ctx, sport.Name)
	if err != nil {
		return fmt.Errorf("failed to check sport usage: %w", err)
	}
	if inUse {
		return ErrSportInUse
	}

	if err = s.sportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return ErrSportNotFound
		}
		return fmt.Errorf("failed to delete sport %d: %w", id, err)
	}
	return nil
}
