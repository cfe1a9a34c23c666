package memory

import (
	"time"

	"kig-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Demo logins for mock mode. Documented in the README; the hashes are
// computed at seed time so the passwords never ship pre-hashed.
const (
	demoAdminEmail     = "admin@kig.com"
	demoAdminPassword  = "admin123"
	demoLeaderEmail    = "leader@kig.com"
	demoLeaderPassword = "leader123"
)

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// seed loads the development fixture set: the two demo accounts, two open
// Knysna infrastructure issues, the work groups that would handle them, their
// tasks, and a recent activity trail for the dashboard feed.
func (s *Store) seed() {
	now := s.now().UTC()

	s.users = []domain.User{
		{
			ID:           "1",
			Email:        demoAdminEmail,
			Name:         "Admin User",
			Role:         domain.RoleAdmin,
			PasswordHash: mustHash(demoAdminPassword),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Email:        demoLeaderEmail,
			Name:         "Work Group Leader",
			Role:         domain.RoleWorkGroupLeader,
			WorkGroup:    "maintenance",
			PasswordHash: mustHash(demoLeaderPassword),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	s.issues = []domain.Issue{
		{
			ID:          "1",
			Title:       "Water pipe burst on Main Street",
			Description: "Large water pipe has burst causing flooding on Main Street near the shopping center.",
			Category:    domain.CategoryWater,
			Status:      domain.StatusOpen,
			Priority:    domain.PriorityHigh,
			Location: domain.Location{
				Latitude:  -34.0373,
				Longitude: 23.0474,
				Address:   "Main Street, Knysna",
			},
			Photos:     []string{},
			ReportedBy: "2",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:          "2",
			Title:       "Street light not working",
			Description: "Street light at corner of Queen Street and Grey Street has been out for 3 days.",
			Category:    domain.CategoryLights,
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityMedium,
			Location: domain.Location{
				Latitude:  -34.0383,
				Longitude: 23.0484,
				Address:   "Queen Street & Grey Street, Knysna",
			},
			Photos:     []string{},
			ReportedBy: "2",
			AssignedTo: "1",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	s.workGroups = []domain.WorkGroup{
		{
			ID:             "1",
			Name:           "Water & Sewerage Team",
			Description:    "Handling all water and sewerage related issues in Knysna",
			LeaderID:       "2",
			Members:        []string{"1", "2"},
			Area:           "Central Knysna",
			Specialization: []domain.IssueCategory{domain.CategoryWater, domain.CategorySewer},
			ContactInfo: domain.ContactInfo{
				Email: "water@kig.com",
				Phone: "+27 44 382 6000",
			},
			Category:  "water",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:             "2",
			Name:           "Infrastructure Maintenance",
			Description:    "General infrastructure maintenance and repairs",
			LeaderID:       "1",
			Members:        []string{"1", "2"},
			Area:           "Greater Knysna",
			Specialization: []domain.IssueCategory{domain.CategoryRoads, domain.CategoryLights, domain.CategoryDrainage},
			ContactInfo: domain.ContactInfo{
				Email: "maintenance@kig.com",
			},
			Category:  "general",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	s.tasks = []domain.Task{
		{
			ID:          "1",
			Title:       "Repair Main Street water pipe",
			Description: "Emergency repair needed for burst water pipe on Main Street",
			WorkGroupID: "1",
			AssignedTo:  "2",
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			DueDate:     "2025-06-05",
			IssueID:     "1",
			CreatedBy:   "1",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Install replacement street light",
			Description: "Replace broken street light at Queen Street intersection",
			WorkGroupID: "2",
			AssignedTo:  "1",
			Status:      domain.TaskStatusPending,
			Priority:    domain.TaskPriorityMedium,
			DueDate:     "2025-06-10",
			IssueID:     "2",
			CreatedBy:   "2",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	s.activity = []domain.ActivityLog{
		{
			ID:          "1",
			Type:        domain.ActivityIssueCreated,
			Description: "New issue reported: Water pipe burst on Main Street",
			UserID:      "2",
			RelatedID:   "1",
			CreatedAt:   now.Add(-30 * time.Minute),
		},
		{
			ID:          "2",
			Type:        domain.ActivityIssueUpdated,
			Description: "Issue status changed from open to inProgress",
			UserID:      "1",
			RelatedID:   "2",
			BeforeData:  domain.Snapshot{"status": "open"},
			AfterData:   domain.Snapshot{"status": "inProgress"},
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "3",
			Type:        domain.ActivityUserJoined,
			Description: "New user joined the community",
			UserID:      "2",
			CreatedAt:   now.Add(-4 * time.Hour),
		},
		{
			ID:          "4",
			Type:        domain.ActivityIssueResolved,
			Description: "Water supply issue resolved in Brackenridge",
			UserID:      "2",
			RelatedID:   "1",
			CreatedAt:   now.Add(-8 * time.Hour),
		},
	}
}
