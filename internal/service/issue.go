package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kig-backend/internal/domain"
	"kig-backend/internal/logger"
	"kig-backend/internal/metrics"
	"kig-backend/internal/repository"
	"kig-backend/internal/storage"
)

type issueService struct {
	issues   repository.IssueRepository
	users    repository.UserRepository
	blobs    storage.BlobStorage
	recorder *ActivityRecorder
	notifier Notifier
	metrics  *metrics.Collector
}

func NewIssueService(issues repository.IssueRepository, users repository.UserRepository,
	blobs storage.BlobStorage, recorder *ActivityRecorder, notifier Notifier,
	collector *metrics.Collector) IssueService {

	return &issueService{
		issues:   issues,
		users:    users,
		blobs:    blobs,
		recorder: recorder,
		notifier: notifier,
		metrics:  collector,
	}
}

func (s *issueService) ListIssues(ctx context.Context) ([]domain.Issue, error) {
	return s.issues.List(ctx)
}

func (s *issueService) GetIssue(ctx context.Context, id string) (*domain.Issue, error) {
	return s.issues.GetByID(ctx, id)
}

func (s *issueService) CreateIssue(ctx context.Context, input CreateIssueInput) (*domain.Issue, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, missingField("title")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, missingField("description")
	}
	if !input.Category.Valid() {
		return nil, invalidField("category", "unknown category")
	}
	if input.ReportedBy == "" {
		return nil, missingField("reportedBy")
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, invalidField("priority", "unknown priority")
	}

	issue := &domain.Issue{
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Status:        domain.StatusOpen,
		Priority:      priority,
		Location:      input.Location,
		Photos:        []string{},
		ReportedBy:    input.ReportedBy,
		WorkGroup:     input.WorkGroup,
		EstimatedCost: input.EstimatedCost,
		DonationGoal:  input.DonationGoal,
	}

	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordIssueCreated()
	}

	s.recorder.Record(ctx, domain.ActivityIssueCreated,
		fmt.Sprintf("New issue reported: %s", issue.Title),
		issue.ReportedBy, issue.ID, nil, nil)

	return issue, nil
}

func (s *issueService) UpdateIssue(ctx context.Context, id string, update domain.IssueUpdate) (*domain.Issue, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, invalidField("status", "unknown status")
	}
	if update.Category != nil && !update.Category.Valid() {
		return nil, invalidField("category", "unknown category")
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, invalidField("priority", "unknown priority")
	}

	issue, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged, previous := update.Apply(issue)
	if statusChanged && issue.Status == domain.StatusResolved && issue.ResolvedAt == nil {
		now := time.Now().UTC()
		issue.ResolvedAt = &now
	}

	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, err
	}

	if statusChanged {
		activityType := domain.ActivityIssueUpdated
		if issue.Status == domain.StatusResolved {
			activityType = domain.ActivityIssueResolved
		}
		actor := issue.AssignedTo
		if actor == "" {
			actor = issue.ReportedBy
		}
		s.recorder.Record(ctx, activityType,
			fmt.Sprintf("Issue status changed from %s to %s", previous, issue.Status),
			actor, issue.ID,
			domain.Snapshot{"status": string(previous)},
			domain.Snapshot{"status": string(issue.Status)})

		if issue.Status == domain.StatusResolved {
			s.notifyReporter(ctx, issue)
		}
	}

	return issue, nil
}

// notifyReporter emails the user who reported the issue. Best effort only;
// a send failure is logged and the update still succeeds.
func (s *issueService) notifyReporter(ctx context.Context, issue *domain.Issue) {
	if s.notifier == nil {
		return
	}
	reporter, err := s.users.GetByID(ctx, issue.ReportedBy)
	if err != nil {
		logger.Warn("Reporter lookup failed for resolution email", "issue_id", issue.ID, "error", err)
		return
	}
	if err := s.notifier.SendIssueResolved(ctx, reporter.Email, reporter.Name, issue.Title); err != nil {
		logger.Error("Failed to send resolution email", "issue_id", issue.ID, "error", err)
	}
}

func (s *issueService) UploadPhoto(ctx context.Context, issueID, fileName string, data []byte) (string, error) {
	if fileName == "" {
		return "", missingField("fileName")
	}
	if len(data) == 0 {
		return "", missingField("file")
	}

	url, err := s.blobs.Upload(ctx, data, fileName, issueID)
	if err != nil {
		return "", err
	}

	// Photo uploads against unknown issues still return the URL; the
	// original accepts a "temp" scope before the issue exists.
	issue, err := s.issues.GetByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return url, nil
		}
		return "", err
	}
	issue.Photos = append(issue.Photos, url)
	if err := s.issues.Update(ctx, issue); err != nil {
		return "", err
	}
	return url, nil
}
