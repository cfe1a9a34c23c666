package domain

import "time"

type IssueCategory string

const (
	CategoryPower     IssueCategory = "power"
	CategorySewer     IssueCategory = "sewer"
	CategoryRoads     IssueCategory = "roads"
	CategoryWater     IssueCategory = "water"
	CategoryLights    IssueCategory = "lights"
	CategoryDrainage  IssueCategory = "drainage"
	CategoryParks     IssueCategory = "parks"
	CategoryWaterways IssueCategory = "waterways"
	CategoryWildlife  IssueCategory = "wildlife"
	CategorySecurity  IssueCategory = "security"
	CategoryWaste     IssueCategory = "waste"
	CategoryOther     IssueCategory = "other"
)

var issueCategories = map[IssueCategory]bool{
	CategoryPower: true, CategorySewer: true, CategoryRoads: true,
	CategoryWater: true, CategoryLights: true, CategoryDrainage: true,
	CategoryParks: true, CategoryWaterways: true, CategoryWildlife: true,
	CategorySecurity: true, CategoryWaste: true, CategoryOther: true,
}

func (c IssueCategory) Valid() bool {
	return issueCategories[c]
}

type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusInProgress IssueStatus = "inProgress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
)

// Valid accepts any of the four statuses; no transition order is enforced
func (s IssueStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityLow      IssuePriority = "low"
	PriorityMedium   IssuePriority = "medium"
	PriorityHigh     IssuePriority = "high"
	PriorityCritical IssuePriority = "critical"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Location pins an issue on the map. Stored as a single serialized field in
// the table backend.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type Issue struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Category          IssueCategory `json:"category"`
	Status            IssueStatus   `json:"status"`
	Priority          IssuePriority `json:"priority"`
	Location          Location      `json:"location"`
	Photos            []string      `json:"photos"`
	ReportedBy        string        `json:"reportedBy"`
	AssignedTo        string        `json:"assignedTo,omitempty"`
	WorkGroup         string        `json:"workGroup,omitempty"`
	EstimatedCost     float64       `json:"estimatedCost,omitempty"`
	DonationGoal      float64       `json:"donationGoal,omitempty"`
	DonationsReceived float64       `json:"donationsReceived,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	ResolvedAt        *time.Time    `json:"resolvedAt,omitempty"`
}

// IssueUpdate carries the fields a PATCH may change. Nil pointers leave the
// stored value untouched; the whole record is rewritten either way.
type IssueUpdate struct {
	Title             *string        `json:"title,omitempty"`
	Description       *string        `json:"description,omitempty"`
	Category          *IssueCategory `json:"category,omitempty"`
	Status            *IssueStatus   `json:"status,omitempty"`
	Priority          *IssuePriority `json:"priority,omitempty"`
	AssignedTo        *string        `json:"assignedTo,omitempty"`
	WorkGroup         *string        `json:"workGroup,omitempty"`
	EstimatedCost     *float64       `json:"estimatedCost,omitempty"`
	DonationGoal      *float64       `json:"donationGoal,omitempty"`
	DonationsReceived *float64       `json:"donationsReceived,omitempty"`
}

// Apply copies the set fields onto the issue and reports whether the status
// changed, returning the previous status for activity logging.
func (u IssueUpdate) Apply(issue *Issue) (statusChanged bool, previous IssueStatus) {
	previous = issue.Status
	if u.Title != nil {
		issue.Title = *u.Title
	}
	if u.Description != nil {
		issue.Description = *u.Description
	}
	if u.Category != nil {
		issue.Category = *u.Category
	}
	if u.Status != nil && *u.Status != issue.Status {
		issue.Status = *u.Status
		statusChanged = true
	}
	if u.Priority != nil {
		issue.Priority = *u.Priority
	}
	if u.AssignedTo != nil {
		issue.AssignedTo = *u.AssignedTo
	}
	if u.WorkGroup != nil {
		issue.WorkGroup = *u.WorkGroup
	}
	if u.EstimatedCost != nil {
		issue.EstimatedCost = *u.EstimatedCost
	}
	if u.DonationGoal != nil {
		issue.DonationGoal = *u.DonationGoal
	}
	if u.DonationsReceived != nil {
		issue.DonationsReceived = *u.DonationsReceived
	}
	return statusChanged, previous
}
