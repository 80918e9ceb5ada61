package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

// cascadeMeetingRepo records DeleteAllForUser calls.
type cascadeMeetingRepo struct {
	deletedFor []string
}

func (c *cascadeMeetingRepo) Create(context.Context, *models.Meeting) error { panic("not used") }

func (c *cascadeMeetingRepo) GetByID(context.Context, string, string) (*models.Meeting, error) {
	panic("not used")
}

func (c *cascadeMeetingRepo) ListForUser(context.Context, string) ([]models.Meeting, error) {
	panic("not used")
}

func (c *cascadeMeetingRepo) SetAccepted(context.Context, string, string, bool) error {
	panic("not used")
}

func (c *cascadeMeetingRepo) SetActive(context.Context, string, string, bool) error {
	panic("not used")
}

func (c *cascadeMeetingRepo) Delete(context.Context, string, string) error { panic("not used") }

func (c *cascadeMeetingRepo) DeleteAllForUser(_ context.Context, userID string) error {
	c.deletedFor = append(c.deletedFor, userID)
	return nil
}

// cascadeContactRepo records DeleteAllForUser calls.
type cascadeContactRepo struct {
	deletedFor []string
}

func (c *cascadeContactRepo) Create(context.Context, *models.Contact) error { panic("not used") }

func (c *cascadeContactRepo) GetByID(context.Context, string, string) (*models.Contact, error) {
	panic("not used")
}

func (c *cascadeContactRepo) ListForUser(context.Context, string) ([]models.Contact, error) {
	panic("not used")
}

func (c *cascadeContactRepo) Delete(context.Context, string, string) error { panic("not used") }

func (c *cascadeContactRepo) DeleteAllForUser(_ context.Context, userID string) error {
	c.deletedFor = append(c.deletedFor, userID)
	return nil
}

type fakeUserRepo struct {
	users  map[string]*models.User // by ID
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

// cascadeScheduler records DeleteAll calls.
type cascadeScheduler struct {
	deletedFor []string
}

func (c *cascadeScheduler) ResolveDay(context.Context, string, string, time.Time) (*models.ResolvedDay, error) {
	panic("not used")
}

func (c *cascadeScheduler) ResolveMonth(context.Context, string, int, int, time.Time) (*models.MonthAvailability, error) {
	panic("not used")
}

func (c *cascadeScheduler) ApplySchedule(context.Context, string, models.ScheduleWriteRequest) error {
	panic("not used")
}

func (c *cascadeScheduler) SetRecurring(context.Context, string, []models.RecurringDayRequest) error {
	panic("not used")
}

func (c *cascadeScheduler) SetSpecific(context.Context, string, []models.SpecificDayRequest) error {
	panic("not used")
}

func (c *cascadeScheduler) MarkDatesUnavailable(context.Context, string, []string) error {
	panic("not used")
}

func (c *cascadeScheduler) AddBusyIntervals(context.Context, string, string, []models.Interval) error {
	panic("not used")
}

func (c *cascadeScheduler) DeleteAll(_ context.Context, userID string) error {
	c.deletedFor = append(c.deletedFor, userID)
	return nil
}

func newService() (*DefaultUserService, *fakeUserRepo, *cascadeScheduler) {
	repo := newFakeUserRepo()
	scheduler := &cascadeScheduler{}
	svc := &DefaultUserService{
		Repo:     repo,
		Schedule: scheduler,
		Meetings: &cascadeMeetingRepo{},
		Contacts: &cascadeContactRepo{},
	}
	return svc, repo, scheduler
}

var registration = models.UserRegistrationData{
	Username: "alice",
	Email:    "alice@example.com",
	Password: "s3cret-pass",
	FullName: "Alice Doe",
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	svc, repo, _ := newService()

	resp, err := svc.Register(context.Background(), registration)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Username)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, registration.Password, stored.PasswordHash)
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registration)
	require.NoError(t, err)

	_, err = svc.Register(ctx, registration)
	assert.ErrorIs(t, err, ErrEmailTaken)

	dup := registration
	dup.Email = "other@example.com"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registration)
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)

	// The email field doubles as a username field on the login form.
	_, err = svc.Authenticate(ctx, "alice", "s3cret-pass")
	assert.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteUser_CascadesEverywhere(t *testing.T) {
	svc, repo, scheduler := newService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, registration)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, resp.ID))
	assert.Equal(t, []string{resp.ID}, scheduler.deletedFor)
	assert.Equal(t, []string{resp.ID}, svc.Meetings.(*cascadeMeetingRepo).deletedFor)
	assert.Equal(t, []string{resp.ID}, svc.Contacts.(*cascadeContactRepo).deletedFor)
	assert.Empty(t, repo.users)
}
