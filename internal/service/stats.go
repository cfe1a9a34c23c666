package service

import (
	"context"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"
)

type statsService struct {
	issues repository.IssueRepository
	groups repository.WorkGroupRepository
}

func NewStatsService(issues repository.IssueRepository, groups repository.WorkGroupRepository) StatsService {
	return &statsService{issues: issues, groups: groups}
}

// GetStats computes the dashboard headline numbers from the full issue and
// work-group lists
func (s *statsService) GetStats(ctx context.Context) (*Stats, error) {
	issues, err := s.issues.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalIssues: len(issues)}
	for _, issue := range issues {
		switch issue.Status {
		case domain.StatusOpen:
			stats.OpenIssues++
		case domain.StatusInProgress:
			stats.InProgressIssues++
		case domain.StatusResolved:
			stats.ResolvedIssues++
		case domain.StatusClosed:
			stats.ClosedIssues++
		}
	}
	for _, group := range groups {
		if group.IsActive {
			stats.ActiveWorkGroups++
		}
	}
	return stats, nil
}
