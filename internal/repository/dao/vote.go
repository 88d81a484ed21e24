package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateVote = errors.New("cannot vote for the same award twice")
	ErrVoteNotFound  = errors.New("vote not found")
)

type Vote struct {
	ID         string `gorm:"primaryKey"`
	EventID    string `gorm:"not null;uniqueIndex:idx_votes_event_attendee_award"`
	AttendeeID uint   `gorm:"not null;uniqueIndex:idx_votes_event_attendee_award"`
	AwardID    string `gorm:"not null;uniqueIndex:idx_votes_event_attendee_award"`
	DemoID     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type VoteDAO struct {
	db *gorm.DB
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{
		db: db,
	}
}

// Upsert inserts the vote, or replaces the demo of the existing vote
// holding the same (event, attendee, award) tuple when the caller
// retries with the original vote ID. A second vote for the same award
// under a fresh ID loses to the unique index and surfaces
// ErrDuplicateVote.
func (d *VoteDAO) Upsert(ctx context.Context, vote Vote) (Vote, error) {
	var existing Vote
	result := d.db.WithContext(ctx).
		First(&existing, "event_id = ? AND attendee_id = ? AND award_id = ?",
			vote.EventID, vote.AttendeeID, vote.AwardID)

	switch {
	case result.Error == nil:
		if existing.ID != vote.ID {
			return Vote{}, ErrDuplicateVote
		}

		existing.DemoID = vote.DemoID
		if err := d.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return Vote{}, err
		}

		return existing, nil

	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		if err := d.db.WithContext(ctx).Create(&vote).Error; err != nil {
			// A concurrent first-vote race loses here instead.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return Vote{}, ErrDuplicateVote
			}

			return Vote{}, err
		}

		return vote, nil

	default:
		return Vote{}, result.Error
	}
}

func (d *VoteDAO) FindByEventAndAttendee(ctx context.Context, eventID string, attendeeID uint) ([]Vote, error) {
	var votes []Vote

	result := d.db.WithContext(ctx).
		Where("event_id = ? AND attendee_id = ?", eventID, attendeeID).
		Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}

	return votes, nil
}

func (d *VoteDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Vote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVoteNotFound
	}

	return nil
}
