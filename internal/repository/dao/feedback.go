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
	ErrFeedbackNotFound      = errors.New("feedback not found")
	ErrDuplicateEventComment = errors.New("event feedback already submitted")
)

type Feedback struct {
	ID           string `gorm:"primaryKey"`
	AttendeeID   uint   `gorm:"not null;uniqueIndex:idx_feedback_attendee_demo"`
	DemoID       string `gorm:"not null;uniqueIndex:idx_feedback_attendee_demo"`
	Rating       *int
	Claps        int  `gorm:"default:0"`
	Star         bool `gorm:"default:false"`
	WantToAccess bool `gorm:"default:false"`
	WantToInvest bool `gorm:"default:false"`
	WantToWork   bool `gorm:"default:false"`
	Comment      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventFeedback struct {
	ID         string `gorm:"primaryKey"`
	EventID    string `gorm:"not null;uniqueIndex:idx_event_feedback_event_attendee"`
	AttendeeID uint   `gorm:"not null;uniqueIndex:idx_event_feedback_event_attendee"`
	Comment    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventFeedbackRow joins an event feedback with the submitting
// attendee's display name and type for the admin review screen.
type EventFeedbackRow struct {
	EventFeedback
	AttendeeName string
	AttendeeType string
}

type FeedbackDAO struct {
	db *gorm.DB
}

func NewFeedbackDAO(db *gorm.DB) *FeedbackDAO {
	return &FeedbackDAO{
		db: db,
	}
}

func (d *FeedbackDAO) Insert(ctx context.Context, feedback Feedback) (Feedback, error) {
	result := d.db.WithContext(ctx).Create(&feedback)
	if result.Error != nil {
		return Feedback{}, result.Error
	}

	return feedback, nil
}

func (d *FeedbackDAO) FindByID(ctx context.Context, id string) (Feedback, error) {
	var feedback Feedback

	result := d.db.WithContext(ctx).First(&feedback, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Feedback{}, ErrFeedbackNotFound
		}

		return Feedback{}, result.Error
	}

	return feedback, nil
}

func (d *FeedbackDAO) FindByAttendeeAndDemo(ctx context.Context, attendeeID uint, demoID string) (Feedback, error) {
	var feedback Feedback

	result := d.db.WithContext(ctx).
		First(&feedback, "attendee_id = ? AND demo_id = ?", attendeeID, demoID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Feedback{}, ErrFeedbackNotFound
		}

		return Feedback{}, result.Error
	}

	return feedback, nil
}

// Update saves the already-merged record wholesale. The partial-field
// merge happens in the repository so absent request fields never reach
// this layer as zero values.
func (d *FeedbackDAO) Update(ctx context.Context, feedback Feedback) (Feedback, error) {
	result := d.db.WithContext(ctx).Save(&feedback)
	if result.Error != nil {
		return Feedback{}, result.Error
	}

	return feedback, nil
}

func (d *FeedbackDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Feedback{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (d *FeedbackDAO) FindByDemo(ctx context.Context, demoID string) ([]Feedback, error) {
	var feedback []Feedback

	result := d.db.WithContext(ctx).Where("demo_id = ?", demoID).Find(&feedback)
	if result.Error != nil {
		return nil, result.Error
	}

	return feedback, nil
}

func (d *FeedbackDAO) UpsertEventFeedback(ctx context.Context, feedback EventFeedback) (EventFeedback, error) {
	var existing EventFeedback
	result := d.db.WithContext(ctx).
		First(&existing, "event_id = ? AND attendee_id = ?", feedback.EventID, feedback.AttendeeID)

	switch {
	case result.Error == nil:
		if existing.ID != feedback.ID {
			return EventFeedback{}, ErrDuplicateEventComment
		}

		existing.Comment = feedback.Comment
		if err := d.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return EventFeedback{}, err
		}

		return existing, nil

	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		if err := d.db.WithContext(ctx).Create(&feedback).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return EventFeedback{}, ErrDuplicateEventComment
			}

			return EventFeedback{}, err
		}

		return feedback, nil

	default:
		return EventFeedback{}, result.Error
	}
}

func (d *FeedbackDAO) FindEventFeedback(ctx context.Context, eventID string, attendeeID uint) (EventFeedback, error) {
	var feedback EventFeedback

	result := d.db.WithContext(ctx).
		First(&feedback, "event_id = ? AND attendee_id = ?", eventID, attendeeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventFeedback{}, ErrFeedbackNotFound
		}

		return EventFeedback{}, result.Error
	}

	return feedback, nil
}

// FindEventFeedbackForAdmin returns every event feedback row joined
// with the attendee's name and type. No other attendee columns are
// selected.
func (d *FeedbackDAO) FindEventFeedbackForAdmin(ctx context.Context, eventID string) ([]EventFeedbackRow, error) {
	var rows []EventFeedbackRow

	result := d.db.WithContext(ctx).
		Table("event_feedbacks").
		Select("event_feedbacks.*, attendees.name AS attendee_name, attendees.type AS attendee_type").
		Joins("JOIN attendees ON attendees.id = event_feedbacks.attendee_id").
		Where("event_feedbacks.event_id = ?", eventID).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
