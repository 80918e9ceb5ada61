package meeting

import (
	"context"
	"errors"
	"fmt"

	meetingRepo "slotwise/database/repository/meeting"
	"slotwise/models"
	"slotwise/services/schedule"
	"slotwise/services/user"
)

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrAlreadyAccepted = errors.New("meeting already accepted")
)

// MeetingService manages meeting requests against a user's calendar.
type MeetingService interface {
	// Create records a visitor's meeting request addressed to a user slug.
	Create(ctx context.Context, req models.MeetingCreateRequest) (*models.Meeting, error)
	GetByID(ctx context.Context, userID, id string) (*models.Meeting, error)
	ListForUser(ctx context.Context, userID string) ([]models.Meeting, error)
	// Accept confirms a meeting and carves its interval out of the date's
	// availability via the schedule engine's promote-then-punch workflow.
	Accept(ctx context.Context, userID, id string) (*models.Meeting, error)
	// Toggle flips the active flag, archiving or restoring the meeting.
	Toggle(ctx context.Context, userID, id string) (*models.Meeting, error)
	Delete(ctx context.Context, userID, id string) error
}

// DefaultMeetingService is the production implementation.
type DefaultMeetingService struct {
	Repo     meetingRepo.MeetingRepository
	Users    user.UserService
	Schedule schedule.ScheduleService
}

func (s *DefaultMeetingService) Create(ctx context.Context, req models.MeetingCreateRequest) (*models.Meeting, error) {
	owner, err := s.Users.GetByUsername(ctx, req.UserSlug)
	if err != nil {
		return nil, err
	}

	// Normalize early so a malformed request never reaches the calendar.
	day, err := schedule.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, schedule.ErrInvalidInterval
	}

	meeting := &models.Meeting{
		UserID:    owner.ID,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Date:      day.Format("2006-01-02"),
		StartTime: schedule.FormatTimeOfDay(start),
		EndTime:   schedule.FormatTimeOfDay(end),
		Active:    true,
	}
	if err := s.Repo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}
	return meeting, nil
}

func (s *DefaultMeetingService) GetByID(ctx context.Context, userID, id string) (*models.Meeting, error) {
	meeting, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	return meeting, nil
}

func (s *DefaultMeetingService) ListForUser(ctx context.Context, userID string) ([]models.Meeting, error) {
	return s.Repo.ListForUser(ctx, userID)
}

func (s *DefaultMeetingService) Accept(ctx context.Context, userID, id string) (*models.Meeting, error) {
	meeting, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if meeting.Accepted {
		return nil, ErrAlreadyAccepted
	}

	start, err := schedule.ParseTimeOfDay(meeting.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(meeting.EndTime)
	if err != nil {
		return nil, err
	}

	busy := []models.Interval{{Start: start, End: end}}
	if err := s.Schedule.AddBusyIntervals(ctx, userID, meeting.Date, busy); err != nil {
		return nil, fmt.Errorf("block meeting interval: %w", err)
	}

	if err := s.Repo.SetAccepted(ctx, userID, id, true); err != nil {
		return nil, fmt.Errorf("mark meeting accepted: %w", err)
	}
	meeting.Accepted = true
	return meeting, nil
}

func (s *DefaultMeetingService) Toggle(ctx context.Context, userID, id string) (*models.Meeting, error) {
	meeting, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetActive(ctx, userID, id, !meeting.Active); err != nil {
		return nil, fmt.Errorf("toggle meeting: %w", err)
	}
	meeting.Active = !meeting.Active
	return meeting, nil
}

func (s *DefaultMeetingService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return ErrMeetingNotFound
	}
	return nil
}
