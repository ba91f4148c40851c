package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

const (
	linkTokenLength  = 24 // bytes of entropy, 48 hex characters
	tokenMaxAttempts = 3
)

type LinkService interface {
	CreateLink(ctx context.Context, managerID int) (*models.StudentLink, error)
	GetAllLinks(ctx context.Context, managerID *int) ([]models.StudentLink, error)
	GetLinkByToken(ctx context.Context, token string) (*models.StudentLink, error)
	SetLinkActive(ctx context.Context, id int, active bool) (*models.StudentLink, error)
	DeleteLink(ctx context.Context, id int) error
	SubmitStudent(ctx context.Context, input LinkSubmissionInput) (*models.Student, error)
}

type LinkSubmissionInput struct {
	Token     string  `json:"token"`
	Name      string  `json:"name"`
	PrnUID    string  `json:"prn_uid"`
	Contact   string  `json:"contact"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	BirthDate string  `json:"birthDate"`
}

type linkService struct {
	linkRepo    repositories.LinkRepository
	managerRepo repositories.ManagerRepository
	studentRepo repositories.StudentRepository
	now         func() time.Time
}

func NewLinkService(
	linkRepo repositories.LinkRepository,
	managerRepo repositories.ManagerRepository,
	studentRepo repositories.StudentRepository,
) LinkService {
	return &linkService{
		linkRepo:    linkRepo,
		managerRepo: managerRepo,
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CreateLink issues a capability token tied to a manager. Token collisions
// are astronomically unlikely at this length; the retry loop exists so the
// unique constraint, not the generator, is the final word.
func (s *linkService) CreateLink(ctx context.Context, managerID int) (*models.StudentLink, error) {
	if _, err := s.managerRepo.GetByID(ctx, managerID); err != nil {
		if errors.Is(err, repositories.ErrManagerNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to check manager %d: %w", managerID, err)
	}

	for attempt := 0; attempt < tokenMaxAttempts; attempt++ {
		token, err := generateSecureToken(linkTokenLength)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLinkTokenGeneration, err)
		}

		link := &models.StudentLink{
			ManagerID: managerID,
			Token:     token,
			IsActive:  true,
		}

		err = s.linkRepo.Create(ctx, link)
		if err == nil {
			return link, nil
		}
		if errors.Is(err, repositories.ErrLinkTokenConflict) {
			continue
		}
		if errors.Is(err, repositories.ErrLinkManagerInvalid) {
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to create registration link: %w", err)
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrLinkTokenGeneration, tokenMaxAttempts)
}

func (s *linkService) GetAllLinks(ctx context.Context, managerID *int) ([]models.StudentLink, error) {
	links, err := s.linkRepo.GetAll(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registration links: %w", err)
	}
	return links, nil
}

// GetLinkByToken resolves public link metadata. An inactive link behaves
// exactly like a missing one so the token leaks nothing once revoked.
func (s *linkService) GetLinkByToken(ctx context.Context, token string) (*models.StudentLink, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrLinkNotFound
	}

	link, err := s.linkRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrLinkNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get registration link: %w", err)
	}
	if !link.IsActive {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

func (s *linkService) SetLinkActive(ctx context.Context, id int, active bool) (*models.StudentLink, error) {
	if err := s.linkRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repositories.ErrLinkNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to update registration link %d: %w", id, err)
	}

	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrLinkNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get registration link %d: %w", id, err)
	}
	return link, nil
}

func (s *linkService) DeleteLink(ctx context.Context, id int) error {
	if err := s.linkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrLinkNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete registration link %d: %w", id, err)
	}
	return nil
}

// SubmitStudent is the public, token-authenticated registration path. The
// created student is bound to the link's manager, never to caller input.
func (s *linkService) SubmitStudent(ctx context.Context, input LinkSubmissionInput) (*models.Student, error) {
	link, err := s.GetLinkByToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.PrnUID = strings.TrimSpace(input.PrnUID)
	input.Contact = strings.TrimSpace(input.Contact)
	switch {
	case input.Name == "":
		return nil, ErrNameRequired
	case input.PrnUID == "":
		return nil, ErrPrnUIDRequired
	case input.Contact == "":
		return nil, ErrContactRequired
	}
	if input.Email != nil && *input.Email != "" && !isValidEmail(strings.TrimSpace(*input.Email)) {
		return nil, ErrEmailInvalid
	}

	birth, err := parseDate(input.BirthDate)
	if err != nil {
		return nil, ErrBirthDateInvalid
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
		ManagerID: link.ManagerID,
		LinkToken: &link.Token,
	}

	if err = s.studentRepo.Create(ctx, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentPrnConflict):
			return nil, ErrStudentPrnConflict
		case errors.Is(err, repositories.ErrStudentManagerInvalid):
			return nil, ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to create student from link submission: %w", err)
	}

	return student, nil
}
