package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
)

type fakeAttendeeRepo struct {
	byEmail map[string]domain.Attendee
	nextID  uint
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{byEmail: make(map[string]domain.Attendee)}
}

func (f *fakeAttendeeRepo) Create(_ context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	if _, ok := f.byEmail[attendee.Email]; ok {
		return domain.Attendee{}, repository.ErrAttendeeEmailExists
	}

	f.nextID++
	attendee.ID = f.nextID
	f.byEmail[attendee.Email] = attendee

	return attendee, nil
}

func (f *fakeAttendeeRepo) FindByEmail(_ context.Context, email string) (domain.Attendee, error) {
	attendee, ok := f.byEmail[email]
	if !ok {
		return domain.Attendee{}, repository.ErrAttendeeNotFound
	}

	return attendee, nil
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeAttendeeRepo())

	created, err := svc.Signup(context.Background(), domain.Attendee{
		Email:    "alex@example.com",
		Password: "s3cret-pass",
		Name:     "Alex",
		Type:     "attendee",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "s3cret-pass", created.Password, "password must be stored hashed")

	attendee, err := svc.Login(context.Background(), "alex@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, created.ID, attendee.ID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAttendeeRepo())

	_, err := svc.Signup(context.Background(), domain.Attendee{
		Email:    "alex@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.Attendee{
		Email:    "alex@example.com",
		Password: "other-pass1",
	})

	assert.ErrorIs(t, err, ErrAttendeeEmailExists)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeAttendeeRepo())

	_, err := svc.Signup(context.Background(), domain.Attendee{
		Email:    "alex@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alex@example.com", "wrong-pass1")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeAttendeeRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever12")

	assert.ErrorIs(t, err, ErrAttendeeNotFound)
}
