package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository/dao"
)

var (
	ErrFeedbackNotFound  = dao.ErrFeedbackNotFound
	ErrDuplicateFeedback = dao.ErrDuplicateEventComment
)

type FeedbackDAO interface {
	Insert(ctx context.Context, feedback dao.Feedback) (dao.Feedback, error)
	FindByID(ctx context.Context, id string) (dao.Feedback, error)
	FindByAttendeeAndDemo(ctx context.Context, attendeeID uint, demoID string) (dao.Feedback, error)
	Update(ctx context.Context, feedback dao.Feedback) (dao.Feedback, error)
	Delete(ctx context.Context, id string) error
	FindByDemo(ctx context.Context, demoID string) ([]dao.Feedback, error)
	UpsertEventFeedback(ctx context.Context, feedback dao.EventFeedback) (dao.EventFeedback, error)
	FindEventFeedback(ctx context.Context, eventID string, attendeeID uint) (dao.EventFeedback, error)
	FindEventFeedbackForAdmin(ctx context.Context, eventID string) ([]dao.EventFeedbackRow, error)
}

type FeedbackRepository struct {
	dao FeedbackDAO
}

func NewFeedbackRepository(dao FeedbackDAO) *FeedbackRepository {
	return &FeedbackRepository{
		dao: dao,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(feedback))
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (domain.Feedback, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FeedbackRepository) FindByAttendeeAndDemo(ctx context.Context, attendeeID uint, demoID string) (domain.Feedback, error) {
	found, err := r.dao.FindByAttendeeAndDemo(ctx, attendeeID, demoID)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("r.dao.FindByAttendeeAndDemo -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FeedbackRepository) Update(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(feedback))
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FeedbackRepository) FindByDemo(ctx context.Context, demoID string) ([]domain.Feedback, error) {
	found, err := r.dao.FindByDemo(ctx, demoID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDemo -> %w", err)
	}

	feedback := make([]domain.Feedback, len(found))
	for i, f := range found {
		feedback[i] = r.daoToDomain(f)
	}

	return feedback, nil
}

func (r *FeedbackRepository) UpsertEventFeedback(ctx context.Context, feedback domain.EventFeedback) (domain.EventFeedback, error) {
	upserted, err := r.dao.UpsertEventFeedback(ctx, dao.EventFeedback{
		ID:         feedback.ID,
		EventID:    feedback.EventID,
		AttendeeID: feedback.AttendeeID,
		Comment:    feedback.Comment,
	})
	if err != nil {
		return domain.EventFeedback{}, fmt.Errorf("r.dao.UpsertEventFeedback -> %w", err)
	}

	return r.eventFeedbackDaoToDomain(upserted), nil
}

func (r *FeedbackRepository) FindEventFeedback(ctx context.Context, eventID string, attendeeID uint) (domain.EventFeedback, error) {
	found, err := r.dao.FindEventFeedback(ctx, eventID, attendeeID)
	if err != nil {
		return domain.EventFeedback{}, fmt.Errorf("r.dao.FindEventFeedback -> %w", err)
	}

	return r.eventFeedbackDaoToDomain(found), nil
}

func (r *FeedbackRepository) FindEventFeedbackForAdmin(ctx context.Context, eventID string) ([]domain.EventFeedbackSummary, error) {
	rows, err := r.dao.FindEventFeedbackForAdmin(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventFeedbackForAdmin -> %w", err)
	}

	summaries := make([]domain.EventFeedbackSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.EventFeedbackSummary{
			EventFeedback: r.eventFeedbackDaoToDomain(row.EventFeedback),
			AttendeeName:  row.AttendeeName,
			AttendeeType:  row.AttendeeType,
		}
	}

	return summaries, nil
}

func (r *FeedbackRepository) domainToDao(f domain.Feedback) dao.Feedback {
	return dao.Feedback{
		ID:           f.ID,
		AttendeeID:   f.AttendeeID,
		DemoID:       f.DemoID,
		Rating:       f.Rating,
		Claps:        f.Claps,
		Star:         f.Star,
		WantToAccess: f.WantToAccess,
		WantToInvest: f.WantToInvest,
		WantToWork:   f.WantToWork,
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func (r *FeedbackRepository) daoToDomain(f dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:           f.ID,
		AttendeeID:   f.AttendeeID,
		DemoID:       f.DemoID,
		Rating:       f.Rating,
		Claps:        f.Claps,
		Star:         f.Star,
		WantToAccess: f.WantToAccess,
		WantToInvest: f.WantToInvest,
		WantToWork:   f.WantToWork,
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func (r *FeedbackRepository) eventFeedbackDaoToDomain(f dao.EventFeedback) domain.EventFeedback {
	return domain.EventFeedback{
		ID:         f.ID,
		EventID:    f.EventID,
		AttendeeID: f.AttendeeID,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
