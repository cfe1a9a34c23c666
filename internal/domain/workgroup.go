package domain

import "time"

// ContactInfo is stored as a single serialized field in the table backend
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

type WorkGroup struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	LeaderID       string          `json:"leaderId"`
	Members        []string        `json:"members"`
	Area           string          `json:"area"`
	Specialization []IssueCategory `json:"specialization"`
	ContactInfo    ContactInfo     `json:"contactInfo"`
	Category       string          `json:"category,omitempty"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
