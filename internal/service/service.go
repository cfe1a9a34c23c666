package service

import (
	"context"

	"kig-backend/internal/domain"
)

type AuthService interface {
	// Login authenticates by exact email match and password hash check.
	// Returns the user and a signed session token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Register creates a resident account (unless a role is supplied) and
	// returns it with a session token
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// UserFromToken verifies a session token and loads its user
	UserFromToken(ctx context.Context, token string) (*domain.User, error)
	// HasPermission reports whether role outranks or equals required
	HasPermission(role, required domain.UserRole) bool
	// CanManageIssue reports whether the user may modify the issue
	CanManageIssue(user *domain.User, issue *domain.Issue) bool
}

type RegisterInput struct {
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Password string          `json:"password"`
	Role     domain.UserRole `json:"role,omitempty"`
	Phone    string          `json:"phone,omitempty"`
}

type IssueService interface {
	ListIssues(ctx context.Context) ([]domain.Issue, error)
	GetIssue(ctx context.Context, id string) (*domain.Issue, error)
	CreateIssue(ctx context.Context, input CreateIssueInput) (*domain.Issue, error)
	UpdateIssue(ctx context.Context, id string, update domain.IssueUpdate) (*domain.Issue, error)
	// UploadPhoto stores the payload issue-scoped and appends the returned
	// URL to the issue's photo list
	UploadPhoto(ctx context.Context, issueID, fileName string, data []byte) (string, error)
}

type CreateIssueInput struct {
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      domain.IssueCategory `json:"category"`
	Priority      domain.IssuePriority `json:"priority"`
	Location      domain.Location      `json:"location"`
	ReportedBy    string               `json:"reportedBy"`
	WorkGroup     string               `json:"workGroup,omitempty"`
	EstimatedCost float64              `json:"estimatedCost,omitempty"`
	DonationGoal  float64              `json:"donationGoal,omitempty"`
}

type WorkGroupService interface {
	ListWorkGroups(ctx context.Context) ([]domain.WorkGroup, error)
	GetWorkGroup(ctx context.Context, id string) (*domain.WorkGroup, error)
	CreateWorkGroup(ctx context.Context, input CreateWorkGroupInput) (*domain.WorkGroup, error)
}

type CreateWorkGroupInput struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	LeaderID       string                 `json:"leaderId"`
	Members        []string               `json:"members"`
	Area           string                 `json:"area"`
	Specialization []domain.IssueCategory `json:"specialization"`
	ContactInfo    domain.ContactInfo     `json:"contactInfo"`
	Category       string                 `json:"category,omitempty"`
}

type TaskService interface {
	ListTasksByWorkGroup(ctx context.Context, workGroupID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
}

type CreateTaskInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	WorkGroupID string              `json:"workGroupId"`
	AssignedTo  string              `json:"assignedTo,omitempty"`
	Status      domain.TaskStatus   `json:"status,omitempty"`
	Priority    domain.TaskPriority `json:"priority,omitempty"`
	DueDate     string              `json:"dueDate,omitempty"`
	IssueID     string              `json:"issueId,omitempty"`
	CreatedBy   string              `json:"createdBy"`
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type ActivityService interface {
	// ListActivity returns the newest entries first, at most limit when
	// limit > 0
	ListActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

// Stats are the dashboard headline numbers
type Stats struct {
	TotalIssues      int `json:"totalIssues"`
	OpenIssues       int `json:"openIssues"`
	InProgressIssues int `json:"inProgressIssues"`
	ResolvedIssues   int `json:"resolvedIssues"`
	ClosedIssues     int `json:"closedIssues"`
	ActiveWorkGroups int `json:"activeWorkGroups"`
}

type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// Notifier sends outbound notification email. Failures never affect the
// triggering mutation.
type Notifier interface {
	SendIssueResolved(ctx context.Context, toEmail, toName, issueTitle string) error
}
