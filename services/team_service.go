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

type TeamService interface {
	CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	GetAllTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
}

type TeamInput struct {
	Name       string
	Department string
	Color      *string
	Logo       *FileInput
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		uploader: uploader,
	}
}

func (s *teamService) validate(input *TeamInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Department = strings.TrimSpace(input.Department)
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Department == "" {
		return ErrDepartmentRequired
	}
	return nil
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	exists, err := s.teamRepo.ExistsByName(ctx, input.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return nil, ErrTeamNameConflict
	}

	team := &models.Team{
		Name:       input.Name,
		Department: input.Department,
		Color:      input.Color,
	}

	if input.Logo != nil {
		key, url, upErr := storeFile(ctx, s.uploader, keyPrefixTeamLogo, storage.KindImage, input.Logo)
		if upErr != nil {
			return nil, upErr
		}
		team.LogoKey = &key
		team.LogoURL = &url
	}

	if err = s.teamRepo.Create(ctx, team); err != nil {
		// The file is already on disk; a failed insert must not leave it.
		if team.LogoKey != nil {
			discardFile(ctx, s.uploader, *team.LogoKey)
		}
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.GetTeamByID(ctx, team.ID)
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) GetAllTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	current, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.teamRepo.ExistsByName(ctx, input.Name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return nil, ErrTeamNameConflict
	}

	team := &models.Team{
		ID:         id,
		Name:       input.Name,
		Department: input.Department,
		Color:      input.Color,
		LogoKey:    current.LogoKey,
		LogoURL:    current.LogoURL,
	}

	var newKey string
	if input.Logo != nil {
		key, url, upErr := storeFile(ctx, s.uploader, keyPrefixTeamLogo, storage.KindImage, input.Logo)
		if upErr != nil {
			return nil, upErr
		}
		newKey = key
		team.LogoKey = &key
		team.LogoURL = &url
	}

	if err = s.teamRepo.Update(ctx, team); err != nil {
		discardFile(ctx, s.uploader, newKey)
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}

	// Replaced logo: the old file is unreferenced once the row is updated.
	if newKey != "" && current.LogoKey != nil && *current.LogoKey != newKey {
		discardFile(ctx, s.uploader, *current.LogoKey)
	}

	return s.GetTeamByID(ctx, id)
}

// DeleteTeam removes the logo file before the row. Managers referencing the
// team keep their rows with team_id set to NULL by the FK.
func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return err
	}

	if team.LogoKey != nil {
		discardFile(ctx, s.uploader, *team.LogoKey)
	}

	if err = s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return nil
}
