package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository/dao"
)

var (
	ErrDuplicateVote = dao.ErrDuplicateVote
	ErrVoteNotFound  = dao.ErrVoteNotFound
)

type VoteDAO interface {
	Upsert(ctx context.Context, vote dao.Vote) (dao.Vote, error)
	FindByEventAndAttendee(ctx context.Context, eventID string, attendeeID uint) ([]dao.Vote, error)
	Delete(ctx context.Context, id string) error
}

type VoteRepository struct {
	dao VoteDAO
}

func NewVoteRepository(dao VoteDAO) *VoteRepository {
	return &VoteRepository{
		dao: dao,
	}
}

func (r *VoteRepository) Upsert(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	upserted, err := r.dao.Upsert(ctx, r.domainToDao(vote))
	if err != nil {
		return domain.Vote{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), nil
}

// AllByAward returns the attendee's votes for the event keyed by award,
// so callers check "did I vote for award X" without scanning a list.
func (r *VoteRepository) AllByAward(ctx context.Context, eventID string, attendeeID uint) (map[string]domain.Vote, error) {
	votes, err := r.dao.FindByEventAndAttendee(ctx, eventID, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventAndAttendee -> %w", err)
	}

	byAward := make(map[string]domain.Vote, len(votes))
	for _, v := range votes {
		byAward[v.AwardID] = r.daoToDomain(v)
	}

	return byAward, nil
}

func (r *VoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *VoteRepository) domainToDao(v domain.Vote) dao.Vote {
	return dao.Vote{
		ID:         v.ID,
		EventID:    v.EventID,
		AttendeeID: v.AttendeeID,
		AwardID:    v.AwardID,
		DemoID:     v.DemoID,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func (r *VoteRepository) daoToDomain(v dao.Vote) domain.Vote {
	return domain.Vote{
		ID:         v.ID,
		EventID:    v.EventID,
		AttendeeID: v.AttendeeID,
		AwardID:    v.AwardID,
		DemoID:     v.DemoID,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
