package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

type SelectionService interface {
	Toggle(ctx context.Context, input ToggleSelectionInput) (*models.StudentSelection, error)
	ListByManager(ctx context.Context, managerID int) ([]models.StudentSelection, error)
}

type ToggleSelectionInput struct {
	StudentID  int  `json:"studentId"`
	ManagerID  int  `json:"managerId"`
	IsSelected bool `json:"isSelected"`
}

type selectionService struct {
	selectionRepo repositories.SelectionRepository
	studentRepo   repositories.StudentRepository
	managerRepo   repositories.ManagerRepository
}

func NewSelectionService(
	selectionRepo repositories.SelectionRepository,
	studentRepo repositories.StudentRepository,
	managerRepo repositories.ManagerRepository,
) SelectionService {
	return &selectionService{
		selectionRepo: selectionRepo,
		studentRepo:   studentRepo,
		managerRepo:   managerRepo,
	}
}

// Toggle upserts the (student, manager) selection row, taking the flag
// verbatim from the request.
func (s *selectionService) Toggle(ctx context.Context, input ToggleSelectionInput) (*models.StudentSelection, error) {
	if _, err := s.studentRepo.GetByID(ctx, input.StudentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to check student %d: %w", input.StudentID, err)
	}
	if _, err := s.managerRepo.GetByID(ctx, input.ManagerID); err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to check manager %d: %w", input.ManagerID, err)
	}

	selection := &models.StudentSelection{
		StudentID:  input.StudentID,
		ManagerID:  input.ManagerID,
		IsSelected: input.IsSelected,
	}

	if err := s.selectionRepo.Upsert(ctx, selection); err != nil {
		if errors.Is(err, repositories.ErrSelectionRefInvalid) {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to toggle selection: %w", err)
	}
	return selection, nil
}

func (s *selectionService) ListByManager(ctx context.Context, managerID int) ([]models.StudentSelection, error) {
	selections, err := s.selectionRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections for manager %d: %w", managerID, err)
	}
	return selections, nil
}
