package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

type fakeFeedbackRepo struct {
	feedback      map[string]domain.Feedback      // by feedback ID
	eventFeedback map[string]domain.EventFeedback // by feedback ID
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{
		feedback:      make(map[string]domain.Feedback),
		eventFeedback: make(map[string]domain.EventFeedback),
	}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	f.feedback[feedback.ID] = feedback

	return feedback, nil
}

func (f *fakeFeedbackRepo) FindByID(_ context.Context, id string) (domain.Feedback, error) {
	feedback, ok := f.feedback[id]
	if !ok {
		return domain.Feedback{}, ErrFeedbackNotFound
	}

	return feedback, nil
}

func (f *fakeFeedbackRepo) FindByAttendeeAndDemo(_ context.Context, attendeeID uint, demoID string) (domain.Feedback, error) {
	for _, feedback := range f.feedback {
		if feedback.AttendeeID == attendeeID && feedback.DemoID == demoID {
			return feedback, nil
		}
	}

	return domain.Feedback{}, ErrFeedbackNotFound
}

func (f *fakeFeedbackRepo) Update(_ context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	f.feedback[feedback.ID] = feedback

	return feedback, nil
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id string) error {
	delete(f.feedback, id)

	return nil
}

func (f *fakeFeedbackRepo) FindByDemo(_ context.Context, demoID string) ([]domain.Feedback, error) {
	var result []domain.Feedback
	for _, feedback := range f.feedback {
		if feedback.DemoID == demoID {
			result = append(result, feedback)
		}
	}

	return result, nil
}

func (f *fakeFeedbackRepo) UpsertEventFeedback(_ context.Context, feedback domain.EventFeedback) (domain.EventFeedback, error) {
	for _, existing := range f.eventFeedback {
		if existing.EventID == feedback.EventID && existing.AttendeeID == feedback.AttendeeID {
			if existing.ID != feedback.ID {
				return domain.EventFeedback{}, ErrDuplicateFeedback
			}

			f.eventFeedback[feedback.ID] = feedback

			return feedback, nil
		}
	}

	f.eventFeedback[feedback.ID] = feedback

	return feedback, nil
}

func (f *fakeFeedbackRepo) FindEventFeedback(_ context.Context, eventID string, attendeeID uint) (domain.EventFeedback, error) {
	for _, feedback := range f.eventFeedback {
		if feedback.EventID == eventID && feedback.AttendeeID == attendeeID {
			return feedback, nil
		}
	}

	return domain.EventFeedback{}, ErrFeedbackNotFound
}

func (f *fakeFeedbackRepo) FindEventFeedbackForAdmin(_ context.Context, eventID string) ([]domain.EventFeedbackSummary, error) {
	var result []domain.EventFeedbackSummary
	for _, feedback := range f.eventFeedback {
		if feedback.EventID == eventID {
			result = append(result, domain.EventFeedbackSummary{
				EventFeedback: feedback,
				AttendeeName:  "Test Attendee",
				AttendeeType:  "attendee",
			})
		}
	}

	return result, nil
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func TestFeedbackService_BeginFeedback_Idempotent(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	first, err := svc.BeginFeedback(context.Background(), 42, "demo-1")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := svc.BeginFeedback(context.Background(), 42, "demo-1")

	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "re-begin must return the existing record")
}

func TestFeedbackService_UpdateFeedback_MergesOnlyPresentFields(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	created, err := svc.BeginFeedback(context.Background(), 42, "demo-1")
	require.NoError(t, err)

	updated, err := svc.UpdateFeedback(context.Background(), created.ID, domain.FeedbackPatch{
		Claps: intPtr(7),
		Star:  boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Claps)
	assert.True(t, updated.Star)

	// A later patch touching other fields must not clobber the claps.
	updated, err = svc.UpdateFeedback(context.Background(), created.ID, domain.FeedbackPatch{
		Rating:  intPtr(8),
		Comment: strPtr("Great!"),
	})

	require.NoError(t, err)
	assert.Equal(t, 7, updated.Claps)
	assert.True(t, updated.Star)
	assert.Equal(t, 8, *updated.Rating)
	assert.Equal(t, "Great!", *updated.Comment)
}

func TestFeedbackService_UpdateFeedback_NotFound(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	_, err := svc.UpdateFeedback(context.Background(), "missing", domain.FeedbackPatch{Claps: intPtr(1)})

	assert.ErrorIs(t, err, ErrFeedbackNotFound)
}

func TestFeedbackService_UpdateFeedback_ScoreProgression(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	created, err := svc.BeginFeedback(context.Background(), 42, "demo-1")
	require.NoError(t, err)
	assert.Equal(t, 0, created.Score())

	updated, err := svc.UpdateFeedback(context.Background(), created.ID, domain.FeedbackPatch{
		Comment: strPtr("Great!"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1006, updated.Score())

	updated, err = svc.UpdateFeedback(context.Background(), created.ID, domain.FeedbackPatch{
		Rating: intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, 1046, updated.Score())
}

func TestFeedbackService_GetDemoFeedback_RankedByScore(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo)

	quiet, err := svc.BeginFeedback(context.Background(), 1, "demo-1")
	require.NoError(t, err)

	commenter, err := svc.BeginFeedback(context.Background(), 2, "demo-1")
	require.NoError(t, err)
	_, err = svc.UpdateFeedback(context.Background(), commenter.ID, domain.FeedbackPatch{
		Comment: strPtr("Loved it"),
	})
	require.NoError(t, err)

	clapper, err := svc.BeginFeedback(context.Background(), 3, "demo-1")
	require.NoError(t, err)
	_, err = svc.UpdateFeedback(context.Background(), clapper.ID, domain.FeedbackPatch{
		Claps: intPtr(25),
	})
	require.NoError(t, err)

	ranked, err := svc.GetDemoFeedback(context.Background(), "demo-1")

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, commenter.ID, ranked[0].ID)
	assert.Equal(t, clapper.ID, ranked[1].ID)
	assert.Equal(t, quiet.ID, ranked[2].ID)
}

func TestFeedbackService_UpsertEventFeedback(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	first, err := svc.UpsertEventFeedback(context.Background(), domain.EventFeedback{
		ID:         "ef-1",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		Comment:    strPtr("Fun night"),
	})
	require.NoError(t, err)

	// Replaying with the original ID replaces the comment.
	replayed, err := svc.UpsertEventFeedback(context.Background(), domain.EventFeedback{
		ID:         "ef-1",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		Comment:    strPtr("Fun night, would come again"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, replayed.ID)
	assert.Equal(t, "Fun night, would come again", *replayed.Comment)

	// A fresh ID for the same (event, attendee) is a conflict.
	_, err = svc.UpsertEventFeedback(context.Background(), domain.EventFeedback{
		ID:         "ef-2",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		Comment:    strPtr("sneaky second comment"),
	})
	assert.ErrorIs(t, err, ErrDuplicateFeedback)
}

func TestFeedbackService_UpsertEventFeedback_GeneratesID(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo())

	feedback, err := svc.UpsertEventFeedback(context.Background(), domain.EventFeedback{
		EventID:    "sf-demo-night",
		AttendeeID: 42,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, feedback.ID)
}
