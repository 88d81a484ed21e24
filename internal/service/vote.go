package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository"
	"github.com/vietanh2810/demo-night-api/monitoring"
)

var (
	ErrDuplicateVote = repository.ErrDuplicateVote
	ErrVoteNotFound  = repository.ErrVoteNotFound
)

type VoteRepository interface {
	Upsert(ctx context.Context, vote domain.Vote) (domain.Vote, error)
	AllByAward(ctx context.Context, eventID string, attendeeID uint) (map[string]domain.Vote, error)
	Delete(ctx context.Context, id string) error
}

type VoteService struct {
	repo VoteRepository
}

func NewVoteService(repo VoteRepository) *VoteService {
	return &VoteService{
		repo: repo,
	}
}

// UpsertVote inserts the attendee's vote or, when retried with the
// original vote ID, replaces the chosen demo in place. A fresh ID for
// an award the attendee already voted on is ErrDuplicateVote: callers
// show it as a validation message, not a failure.
func (s *VoteService) UpsertVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	upserted, err := s.repo.Upsert(ctx, vote)
	if err != nil {
		return domain.Vote{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	monitoring.TrackVote(vote.EventID)

	return upserted, nil
}

// GetVotes returns the attendee's votes for the event keyed by award.
func (s *VoteService) GetVotes(ctx context.Context, eventID string, attendeeID uint) (map[string]domain.Vote, error) {
	votes, err := s.repo.AllByAward(ctx, eventID, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.AllByAward -> %w", err)
	}

	return votes, nil
}

func (s *VoteService) DeleteVote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
