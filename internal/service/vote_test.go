package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/demo-night-api/internal/domain"
)

// fakeVoteLedger mirrors the database contract: one vote per
// (event, attendee, award), replace-in-place when retried with the
// original vote ID.
type fakeVoteLedger struct {
	votes map[string]domain.Vote // by vote ID
}

func newFakeVoteLedger() *fakeVoteLedger {
	return &fakeVoteLedger{votes: make(map[string]domain.Vote)}
}

func (f *fakeVoteLedger) Upsert(_ context.Context, vote domain.Vote) (domain.Vote, error) {
	for _, existing := range f.votes {
		if existing.EventID == vote.EventID &&
			existing.AttendeeID == vote.AttendeeID &&
			existing.AwardID == vote.AwardID {
			if existing.ID != vote.ID {
				return domain.Vote{}, ErrDuplicateVote
			}

			f.votes[vote.ID] = vote

			return vote, nil
		}
	}

	f.votes[vote.ID] = vote

	return vote, nil
}

func (f *fakeVoteLedger) AllByAward(_ context.Context, eventID string, attendeeID uint) (map[string]domain.Vote, error) {
	byAward := make(map[string]domain.Vote)
	for _, vote := range f.votes {
		if vote.EventID == eventID && vote.AttendeeID == attendeeID {
			byAward[vote.AwardID] = vote
		}
	}

	return byAward, nil
}

func (f *fakeVoteLedger) Delete(_ context.Context, id string) error {
	if _, ok := f.votes[id]; !ok {
		return ErrVoteNotFound
	}
	delete(f.votes, id)

	return nil
}

func TestVoteService_UpsertVote(t *testing.T) {
	svc := NewVoteService(newFakeVoteLedger())

	vote, err := svc.UpsertVote(context.Background(), domain.Vote{
		ID:         "vote-1",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		AwardID:    "crowd-favorite",
		DemoID:     strPtr("demo-1"),
	})

	require.NoError(t, err)
	assert.Equal(t, "demo-1", *vote.DemoID)
}

func TestVoteService_UpsertVote_RetryReplacesChoice(t *testing.T) {
	svc := NewVoteService(newFakeVoteLedger())

	_, err := svc.UpsertVote(context.Background(), domain.Vote{
		ID:         "vote-1",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		AwardID:    "crowd-favorite",
		DemoID:     strPtr("demo-1"),
	})
	require.NoError(t, err)

	// Same vote ID, new choice: the attendee changed their mind.
	vote, err := svc.UpsertVote(context.Background(), domain.Vote{
		ID:         "vote-1",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		AwardID:    "crowd-favorite",
		DemoID:     strPtr("demo-2"),
	})

	require.NoError(t, err)
	assert.Equal(t, "demo-2", *vote.DemoID)

	votes, err := svc.GetVotes(context.Background(), "sf-demo-night", 42)
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func TestVoteService_UpsertVote_FreshIDForSameAwardConflicts(t *testing.T) {
	svc := NewVoteService(newFakeVoteLedger())

	_, err := svc.UpsertVote(context.Background(), domain.Vote{
		ID:         "vote-1",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		AwardID:    "crowd-favorite",
		DemoID:     strPtr("demo-1"),
	})
	require.NoError(t, err)

	_, err = svc.UpsertVote(context.Background(), domain.Vote{
		ID:         "vote-2",
		EventID:    "sf-demo-night",
		AttendeeID: 42,
		AwardID:    "crowd-favorite",
		DemoID:     strPtr("demo-2"),
	})

	assert.ErrorIs(t, err, ErrDuplicateVote)
}

func TestVoteService_GetVotes_KeyedByAward(t *testing.T) {
	svc := NewVoteService(newFakeVoteLedger())

	for i, awardID := range []string{"crowd-favorite", "most-innovative"} {
		_, err := svc.UpsertVote(context.Background(), domain.Vote{
			ID:         []string{"vote-1", "vote-2"}[i],
			EventID:    "sf-demo-night",
			AttendeeID: 42,
			AwardID:    awardID,
			DemoID:     strPtr("demo-1"),
		})
		require.NoError(t, err)
	}

	votes, err := svc.GetVotes(context.Background(), "sf-demo-night", 42)

	require.NoError(t, err)
	require.Len(t, votes, 2)
	assert.Equal(t, "vote-1", votes["crowd-favorite"].ID)
	assert.Equal(t, "vote-2", votes["most-innovative"].ID)
}

func TestVoteService_DeleteVote_NotFound(t *testing.T) {
	svc := NewVoteService(newFakeVoteLedger())

	err := svc.DeleteVote(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrVoteNotFound)
}
