package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
)

var (
	ErrAttendeeEmailExists = repository.ErrAttendeeEmailExists
	ErrWrongPassword       = errors.New("wrong password")
)

type AuthAttendeeRepository interface {
	Create(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
	FindByEmail(ctx context.Context, email string) (domain.Attendee, error)
}

type AuthService struct {
	repo AuthAttendeeRepository
}

func NewAuthService(repo AuthAttendeeRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Signup(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(attendee.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Attendee{}, err
	}
	attendee.Password = string(hash)

	created, err := s.repo.Create(ctx, attendee)
	if err != nil {
		if errors.Is(err, repository.ErrAttendeeEmailExists) {
			return domain.Attendee{}, ErrAttendeeEmailExists
		}

		return domain.Attendee{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Attendee, error) {
	attendee, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAttendeeNotFound) {
			return domain.Attendee{}, ErrAttendeeNotFound
		}

		return domain.Attendee{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(attendee.Password), []byte(password)); err != nil {
		return domain.Attendee{}, ErrWrongPassword
	}

	return attendee, nil
}
