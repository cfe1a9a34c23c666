package domain

import "time"

type ActivityType string

const (
	ActivityIssueCreated     ActivityType = "issueCreated"
	ActivityIssueUpdated     ActivityType = "issueUpdated"
	ActivityIssueResolved    ActivityType = "issueResolved"
	ActivityUserJoined       ActivityType = "userJoined"
	ActivityDonationReceived ActivityType = "donationReceived"
	ActivityMessagePosted    ActivityType = "messagePosted"
	ActivityGroupCreated     ActivityType = "groupCreated"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityIssueCreated, ActivityIssueUpdated, ActivityIssueResolved,
		ActivityUserJoined, ActivityDonationReceived, ActivityMessagePosted,
		ActivityGroupCreated:
		return true
	}
	return false
}

// Snapshot is an opaque key-value diff captured alongside a mutation,
// e.g. {"status": "open"}.
type Snapshot map[string]string

// ActivityLog is an append-only audit entry. Entries are never updated or
// deleted once written.
type ActivityLog struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	UserID      string       `json:"userId"`
	RelatedID   string       `json:"relatedId,omitempty"`
	BeforeData  Snapshot     `json:"beforeData,omitempty"`
	AfterData   Snapshot     `json:"afterData,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
