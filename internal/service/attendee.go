package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
)

var (
	ErrAttendeeNotFound = repository.ErrAttendeeNotFound
)

type AttendeeRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Attendee, error)
}

type AttendeeService struct {
	repo AttendeeRepository
}

func NewAttendeeService(repo AttendeeRepository) *AttendeeService {
	return &AttendeeService{
		repo: repo,
	}
}

func (s *AttendeeService) GetAttendee(ctx context.Context, id uint) (domain.Attendee, error) {
	attendee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return attendee, nil
}
