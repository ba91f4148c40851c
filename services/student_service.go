package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

type StudentService interface {
	CreateStudent(ctx context.Context, input StudentInput) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int) (*models.Student, error)
	GetAllStudents(ctx context.Context, managerID *int) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id int, input StudentInput) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int) error
}

type StudentInput struct {
	Name      string  `json:"name"`
	PrnUID    string  `json:"prn_uid"`
	Contact   string  `json:"contact"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	BirthDate string  `json:"birthDate"`
	ManagerID int     `json:"managerId"`
}

type studentService struct {
	studentRepo repositories.StudentRepository
	managerRepo repositories.ManagerRepository
	now         func() time.Time
}

func NewStudentService(studentRepo repositories.StudentRepository, managerRepo repositories.ManagerRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		managerRepo: managerRepo,
		now:         time.Now,
	}
}

func (s *studentService) validate(input *StudentInput) (time.Time, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.PrnUID = strings.TrimSpace(input.PrnUID)
	input.Contact = strings.TrimSpace(input.Contact)

	switch {
	case input.Name == "":
		return time.Time{}, ErrNameRequired
	case input.PrnUID == "":
		return time.Time{}, ErrPrnUIDRequired
	case input.Contact == "":
		return time.Time{}, ErrContactRequired
	}
	if input.Email != nil && *input.Email != "" && !isValidEmail(strings.TrimSpace(*input.Email)) {
		return time.Time{}, ErrEmailInvalid
	}

	birth, err := parseDate(input.BirthDate)
	if err != nil {
		return time.Time{}, ErrBirthDateInvalid
	}
	return birth, nil
}

func (s *studentService) CreateStudent(ctx context.Context, input StudentInput) (*models.Student, error) {
	birth, err := s.validate(&input)
	if err != nil {
		return nil, err
	}

	if _, err = s.managerRepo.GetByID(ctx, input.ManagerID); err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to check manager %d: %w", input.ManagerID, err)
	}

	exists, err := s.studentRepo.ExistsByPrnUID(ctx, input.PrnUID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check student prn_uid: %w", err)
	}
	if exists {
		return nil, ErrStudentPrnConflict
	}

	student := &models.Student{
		Name:      input.Name,
		PrnUID:    input.PrnUID,
		Contact:   input.Contact,
		Email:     input.Email,
		Address:   input.Address,
		BirthDate: birth,
		Age:       calculateAge(birth, s.now()),
		ManagerID: input.ManagerID,
	}

	if err = s.studentRepo.Create(ctx, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentPrnConflict):
			return nil, ErrStudentPrnConflict
		case errors.Is(err, repositories.ErrStudentManagerInvalid):
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return s.GetStudentByID(ctx, student.ID)
}

func (s *studentService) GetStudentByID(ctx context.Context, id int) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return student, nil
}

func (s *studentService) GetAllStudents(ctx context.Context, managerID *int) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id int, input StudentInput) (*models.Student, error) {
	birth, err := s.validate(&input)
	if err != nil {
		return nil, err
	}

	if _, err = s.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}

	if _, err = s.managerRepo.GetByID(ctx, input.ManagerID); err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to check manager %d: %w", input.ManagerID, err)
	}

	exists, err := s.studentRepo.ExistsByPrnUID(ctx, input.PrnUID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check student prn_uid: %w", err)
	}
	if exists {
		return nil, ErrStudentPrnConflict
	}

	student := &models.Student{
		ID:        id,
		Name:      input.Name,
		PrnUID:    input.PrnUID,
		Contact:   input.Contact,
		Email:     input.Email,
		Address:   input.Address,
		BirthDate: birth,
		Age:       calculateAge(birth, s.now()),
		ManagerID: input.ManagerID,
	}

	if err = s.studentRepo.Update(ctx, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentNotFound):
			return nil, ErrStudentNotFound
		case errors.Is(err, repositories.ErrStudentPrnConflict):
			return nil, ErrStudentPrnConflict
		case errors.Is(err, repositories.ErrStudentManagerInvalid):
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to update student %d: %w", id, err)
	}

	return s.GetStudentByID(ctx, id)
}

func (s *studentService) DeleteStudent(ctx context.Context, id int) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("failed to delete student %d: %w", id, err)
	}
	return nil
}
