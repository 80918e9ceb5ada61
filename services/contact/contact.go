package contact

import (
	"context"
	"errors"
	"fmt"

	contactRepo "slotwise/database/repository/contact"
	"slotwise/models"
	"slotwise/services/user"
)

var ErrContactNotFound = errors.New("contact message not found")

// ContactService stores and serves contact-form messages.
type ContactService interface {
	Create(ctx context.Context, req models.ContactCreateRequest) (*models.Contact, error)
	GetByID(ctx context.Context, userID, id string) (*models.Contact, error)
	ListForUser(ctx context.Context, userID string) ([]models.Contact, error)
	Delete(ctx context.Context, userID, id string) error
}

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo  contactRepo.ContactRepository
	Users user.UserService
}

func (s *DefaultContactService) Create(ctx context.Context, req models.ContactCreateRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	// A message may be addressed to a user's public page; a dangling slug is
	// kept as an unaddressed message rather than rejected.
	if req.UserSlug != "" {
		owner, err := s.Users.GetByUsername(ctx, req.UserSlug)
		if err == nil {
			contact.UserID = owner.ID
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
	}

	if err := s.Repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *DefaultContactService) GetByID(ctx context.Context, userID, id string) (*models.Contact, error) {
	contact, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (s *DefaultContactService) ListForUser(ctx context.Context, userID string) ([]models.Contact, error) {
	return s.Repo.ListForUser(ctx, userID)
}

func (s *DefaultContactService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return ErrContactNotFound
	}
	return nil
}
