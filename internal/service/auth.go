package service

import (
	"context"
	"errors"
	"strings"

	"kig-backend/internal/domain"
	"kig-backend/internal/repository"
	"kig-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users    repository.UserRepository
	tokens   security.TokenManager
	recorder *ActivityRecorder
}

func NewAuthService(users repository.UserRepository, tokens security.TokenManager, recorder *ActivityRecorder) AuthService {
	return &authService{
		users:    users,
		tokens:   tokens,
		recorder: recorder,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	// Email lookup is an exact, case-sensitive match
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", missingField("email")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, "", missingField("name")
	}
	if input.Password == "" {
		return nil, "", missingField("password")
	}

	role := input.Role
	if role == "" {
		role = domain.RoleResident
	}
	if !role.Valid() {
		return nil, "", invalidField("role", "unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         role,
		Phone:        input.Phone,
		PasswordHash: string(hash),
	}

	// Uniqueness is enforced by the store itself; ErrEmailTaken passes
	// straight through to the handler
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	s.recorder.Record(ctx, domain.ActivityUserJoined,
		"New user joined the community", user.ID, "", nil, nil)

	return user, token, nil
}

func (s *authService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// HasPermission compares the fixed role hierarchy:
// guest < resident < workGroupLeader < admin
func (s *authService) HasPermission(role, required domain.UserRole) bool {
	return role.Rank() >= required.Rank()
}

func (s *authService) CanManageIssue(user *domain.User, issue *domain.Issue) bool {
	if user.Role == domain.RoleAdmin {
		return true
	}
	if user.Role == domain.RoleWorkGroupLeader && issue.AssignedTo == user.ID {
		return true
	}
	return issue.ReportedBy == user.ID
}
