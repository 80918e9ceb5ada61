package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	contactRepo "slotwise/database/repository/contact"
	meetingRepo "slotwise/database/repository/meeting"
	userRepo "slotwise/database/repository/user"
	"slotwise/models"
	"slotwise/services/schedule"
	"slotwise/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

const tokenTTL = 24 * time.Hour

// UserService handles accounts and token issuance.
type UserService interface {
	Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// DeleteUser removes the account and cascades to every schedule rule,
	// meeting and contact message the user owns.
	DeleteUser(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Schedule schedule.ScheduleService
	Meetings meetingRepo.MeetingRepository
	Contacts contactRepo.ContactRepository
}

func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error) {
	if existing, err := s.Repo.GetByEmail(ctx, data.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.Repo.GetByUsername(ctx, data.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: string(hash),
		FullName:     data.FullName,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.authResponse(user)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		// The login form accepts a username in the email field too.
		user, err = s.Repo.GetByUsername(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("lookup user: %w", err)
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *DefaultUserService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &models.AuthResponse{
		ID:       user.ID,
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *DefaultUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Schedule.DeleteAll(ctx, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if err := s.Meetings.DeleteAllForUser(ctx, id); err != nil {
		return fmt.Errorf("delete meetings: %w", err)
	}
	if err := s.Contacts.DeleteAllForUser(ctx, id); err != nil {
		return fmt.Errorf("delete contacts: %w", err)
	}
	return s.Repo.Delete(ctx, id)
}
