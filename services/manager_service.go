package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

const loginTokenTTL = 72 * time.Hour

type ManagerService interface {
	CreateManager(ctx context.Context, input CreateManagerInput) (*models.Manager, error)
	GetManagerByID(ctx context.Context, id int) (*models.Manager, error)
	GetAllManagers(ctx context.Context) ([]models.Manager, error)
	UpdateManager(ctx context.Context, id int, input UpdateManagerInput) (*models.Manager, error)
	DeleteManager(ctx context.Context, id int) error
	Login(ctx context.Context, input LoginInput) (*models.Manager, string, error)
}

type CreateManagerInput struct {
	Name         string `json:"name"`
	Department   string `json:"department"`
	Sport        string `json:"sport"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
	StudentCount int    `json:"studentCount"`
	TeamID       *int   `json:"teamId"`
}

type UpdateManagerInput = CreateManagerInput

type LoginInput struct {
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type managerService struct {
	managerRepo repositories.ManagerRepository
	teamRepo    repositories.TeamRepository
	jwtSecret   string
}

func NewManagerService(managerRepo repositories.ManagerRepository, teamRepo repositories.TeamRepository, jwtSecret string) ManagerService {
	return &managerService{
		managerRepo: managerRepo,
		teamRepo:    teamRepo,
		jwtSecret:   jwtSecret,
	}
}

func (s *managerService) validate(input *CreateManagerInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Department = strings.TrimSpace(input.Department)
	input.Sport = strings.TrimSpace(input.Sport)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Email = strings.TrimSpace(input.Email)

	switch {
	case input.Name == "":
		return ErrNameRequired
	case input.Department == "":
		return ErrDepartmentRequired
	case input.Sport == "":
		return ErrSportRequired
	case input.Contact == "":
		return ErrContactRequired
	case !isValidEmail(input.Email):
		return ErrEmailInvalid
	case input.StudentCount <= 0:
		return ErrStudentCountInvalid
	}
	return nil
}

func (s *managerService) CreateManager(ctx context.Context, input CreateManagerInput) (*models.Manager, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	// Fast-path duplicate check for a friendlier message; the unique
	// constraint below remains the authoritative backstop.
	exists, err := s.managerRepo.ExistsByEmail(ctx, input.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check manager email: %w", err)
	}
	if exists {
		return nil, ErrManagerEmailConflict
	}

	if input.TeamID != nil {
		if _, err = s.teamRepo.GetByID(ctx, *input.TeamID); err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to check team %d: %w", *input.TeamID, err)
		}
	}

	manager := &models.Manager{
		Name:         input.Name,
		Department:   input.Department,
		Sport:        input.Sport,
		Contact:      input.Contact,
		Email:        input.Email,
		StudentCount: input.StudentCount,
		TeamID:       input.TeamID,
	}

	if err = s.managerRepo.Create(ctx, manager); err != nil {
		switch {
		case errors.Is(err, repositories.ErrManagerEmailConflict):
			return nil, ErrManagerEmailConflict
		case errors.Is(err, repositories.ErrManagerTeamInvalid):
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create manager: %w", err)
	}

	return s.GetManagerByID(ctx, manager.ID)
}

func (s *managerService) GetManagerByID(ctx context.Context, id int) (*models.Manager, error) {
	manager, err := s.managerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to get manager %d: %w", id, err)
	}
	return manager, nil
}

func (s *managerService) GetAllManagers(ctx context.Context) ([]models.Manager, error) {
	managers, err := s.managerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	return managers, nil
}

func (s *managerService) UpdateManager(ctx context.Context, id int, input UpdateManagerInput) (*models.Manager, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	if _, err := s.GetManagerByID(ctx, id); err != nil {
		return nil, err
	}

	exists, err := s.managerRepo.ExistsByEmail(ctx, input.Email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check manager email: %w", err)
	}
	if exists {
		return nil, ErrManagerEmailConflict
	}

	if input.TeamID != nil {
		if _, err = s.teamRepo.GetByID(ctx, *input.TeamID); err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to check team %d: %w", *input.TeamID, err)
		}
	}

	manager := &models.Manager{
		ID:           id,
		Name:         input.Name,
		Department:   input.Department,
		Sport:        input.Sport,
		Contact:      input.Contact,
		Email:        input.Email,
		StudentCount: input.StudentCount,
		TeamID:       input.TeamID,
	}

	if err = s.managerRepo.Update(ctx, manager); err != nil {
		switch {
		case errors.Is(err, repositories.ErrManagerNotFound):
			return nil, ErrManagerNotFound
		case errors.Is(err, repositories.ErrManagerEmailConflict):
			return nil, ErrManagerEmailConflict
		case errors.Is(err, repositories.ErrManagerTeamInvalid):
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update manager %d: %w", id, err)
	}

	return s.GetManagerByID(ctx, id)
}

// DeleteManager removes the manager row; students, coaches, selections and
// registration links cascade away with it.
func (s *managerService) DeleteManager(ctx context.Context, id int) error {
	if err := s.managerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return ErrManagerNotFound
		}
		return fmt.Errorf("failed to delete manager %d: %w", id, err)
	}
	return nil
}

// Login authenticates by the (email, contact) pair. The failure error never
// says which of the two was wrong.
func (s *managerService) Login(ctx context.Context, input LoginInput) (*models.Manager, string, error) {
	email := strings.TrimSpace(input.Email)
	contact := strings.TrimSpace(input.Contact)
	if email == "" || contact == "" {
		return nil, "", ErrInvalidCredentials
	}

	manager, err := s.managerRepo.GetByEmailAndContact(ctx, email, contact)
	if err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up manager credentials: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"manager_id": manager.ID,
		"email":      manager.Email,
		"exp":        time.Now().Add(loginTokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign login token: %w", err)
	}

	return manager, signed, nil
}
