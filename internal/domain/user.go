package domain

import "time"

type UserRole string

const (
	RoleGuest           UserRole = "guest"
	RoleResident        UserRole = "resident"
	RoleWorkGroupLeader UserRole = "workGroupLeader"
	RoleAdmin           UserRole = "admin"
)

// roleRanks orders roles into the fixed permission hierarchy.
// A role is authorized for anything a lower-ranked role is.
var roleRanks = map[UserRole]int{
	RoleGuest:           0,
	RoleResident:        1,
	RoleWorkGroupLeader: 2,
	RoleAdmin:           3,
}

// Rank returns the role's position in the hierarchy. Unknown roles rank
// below guest so a mangled claim never gains access.
func (r UserRole) Rank() int {
	if rank, ok := roleRanks[r]; ok {
		return rank
	}
	return -1
}

// Valid reports whether the role is one of the four known roles
func (r UserRole) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           UserRole  `json:"role"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone,omitempty"`
	WorkGroup      string    `json:"workGroup,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
