package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
)

var (
	ErrFeedbackNotFound  = repository.ErrFeedbackNotFound
	ErrDuplicateFeedback = repository.ErrDuplicateFeedback
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	FindByID(ctx context.Context, id string) (domain.Feedback, error)
	FindByAttendeeAndDemo(ctx context.Context, attendeeID uint, demoID string) (domain.Feedback, error)
	Update(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	Delete(ctx context.Context, id string) error
	FindByDemo(ctx context.Context, demoID string) ([]domain.Feedback, error)
	UpsertEventFeedback(ctx context.Context, feedback domain.EventFeedback) (domain.EventFeedback, error)
	FindEventFeedback(ctx context.Context, eventID string, attendeeID uint) (domain.EventFeedback, error)
	FindEventFeedbackForAdmin(ctx context.Context, eventID string) ([]domain.EventFeedbackSummary, error)
}

type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		repo: repo,
	}
}

// BeginFeedback creates the (attendee, demo) feedback record with
// defaults, or returns the existing one. Attendees start reacting as
// soon as a demo comes on screen, so creation has to be idempotent.
func (s *FeedbackService) BeginFeedback(ctx context.Context, attendeeID uint, demoID string) (domain.Feedback, error) {
	existing, err := s.repo.FindByAttendeeAndDemo(ctx, attendeeID, demoID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrFeedbackNotFound) {
		return domain.Feedback{}, fmt.Errorf("s.repo.FindByAttendeeAndDemo -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Feedback{
		ID:         uuid.NewString(),
		AttendeeID: attendeeID,
		DemoID:     demoID,
	})
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateFeedback merges the patch into the stored record: only fields
// present in the patch mutate, absent fields are left untouched.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id string, patch domain.FeedbackPatch) (domain.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFeedbackNotFound) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}

		return domain.Feedback{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if patch.Rating != nil {
		feedback.Rating = patch.Rating
	}
	if patch.Claps != nil {
		feedback.Claps = *patch.Claps
	}
	if patch.Star != nil {
		feedback.Star = *patch.Star
	}
	if patch.WantToAccess != nil {
		feedback.WantToAccess = *patch.WantToAccess
	}
	if patch.WantToInvest != nil {
		feedback.WantToInvest = *patch.WantToInvest
	}
	if patch.WantToWork != nil {
		feedback.WantToWork = *patch.WantToWork
	}
	if patch.Comment != nil {
		feedback.Comment = patch.Comment
	}

	updated, err := s.repo.Update(ctx, feedback)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, id string) (domain.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFeedbackNotFound) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}

		return domain.Feedback{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return feedback, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// GetDemoFeedback returns all feedback for a demo ordered by score,
// highest first, for the admin dashboard.
func (s *FeedbackService) GetDemoFeedback(ctx context.Context, demoID string) ([]domain.Feedback, error) {
	feedback, err := s.repo.FindByDemo(ctx, demoID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDemo -> %w", err)
	}

	sort.SliceStable(feedback, func(i, j int) bool {
		return feedback[i].Score() > feedback[j].Score()
	})

	return feedback, nil
}

// UpsertEventFeedback records the attendee's single end-of-event
// comment, with the same replace-by-original-id semantics as votes.
func (s *FeedbackService) UpsertEventFeedback(ctx context.Context, feedback domain.EventFeedback) (domain.EventFeedback, error) {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}

	upserted, err := s.repo.UpsertEventFeedback(ctx, feedback)
	if err != nil {
		return domain.EventFeedback{}, fmt.Errorf("s.repo.UpsertEventFeedback -> %w", err)
	}

	return upserted, nil
}

func (s *FeedbackService) GetEventFeedback(ctx context.Context, eventID string, attendeeID uint) (domain.EventFeedback, error) {
	feedback, err := s.repo.FindEventFeedback(ctx, eventID, attendeeID)
	if err != nil {
		if errors.Is(err, ErrFeedbackNotFound) {
			return domain.EventFeedback{}, ErrFeedbackNotFound
		}

		return domain.EventFeedback{}, fmt.Errorf("s.repo.FindEventFeedback -> %w", err)
	}

	return feedback, nil
}

// GetEventFeedbackAdmin returns every end-of-event comment joined with
// the attendee's name and type only. No other attendee PII leaves this
// boundary.
func (s *FeedbackService) GetEventFeedbackAdmin(ctx context.Context, eventID string) ([]domain.EventFeedbackSummary, error) {
	summaries, err := s.repo.FindEventFeedbackForAdmin(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindEventFeedbackForAdmin -> %w", err)
	}

	return summaries, nil
}
