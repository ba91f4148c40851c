package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nkalgutkar/sports-management/models"
	"github.com/nkalgutkar/sports-management/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	managerRepo repositories.ManagerRepository
	teamRepo    repositories.TeamRepository
	sportRepo   repositories.SportRepository
	studentRepo repositories.StudentRepository
	coachRepo   repositories.CoachRepository
	noticeRepo  repositories.NoticeRepository
}

func NewDashboardService(
	managerRepo repositories.ManagerRepository,
	teamRepo repositories.TeamRepository,
	sportRepo repositories.SportRepository,
	studentRepo repositories.StudentRepository,
	coachRepo repositories.CoachRepository,
	noticeRepo repositories.NoticeRepository,
) DashboardService {
	return &dashboardService{
		managerRepo: managerRepo,
		teamRepo:    teamRepo,
		sportRepo:   sportRepo,
		studentRepo: studentRepo,
		coachRepo:   coachRepo,
		noticeRepo:  noticeRepo,
	}
}

// GetStats gathers the per-entity counts concurrently. Each count uses its
// own pooled connection, so the group is bounded by the pool size.
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { stats.Managers, err = s.managerRepo.Count(gctx); return })
	g.Go(func() (err error) { stats.Teams, err = s.teamRepo.Count(gctx); return })
	g.Go(func() (err error) { stats.Sports, err = s.sportRepo.Count(gctx); return })
	g.Go(func() (err error) { stats.Students, err = s.studentRepo.Count(gctx); return })
	g.Go(func() (err error) { stats.Coaches, err = s.coachRepo.Count(gctx); return })
	g.Go(func() (err error) { stats.Notices, err = s.noticeRepo.Count(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to gather dashboard stats: %w", err)
	}
	return &stats, nil
}
