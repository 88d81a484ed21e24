package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
	ErrDemoNotFound  = dao.ErrDemoNotFound
)

type EventDAO interface {
	FindByID(ctx context.Context, id string) (dao.Event, error)
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	InsertDemo(ctx context.Context, demo dao.Demo) (dao.Demo, error)
	FindDemoByID(ctx context.Context, id string) (dao.Demo, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, dao.Event{
		ID:       event.ID,
		Name:     event.Name,
		Date:     event.Date,
		Location: event.Location,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) CreateDemo(ctx context.Context, demo domain.Demo) (domain.Demo, error) {
	created, err := r.dao.InsertDemo(ctx, dao.Demo{
		ID:          demo.ID,
		EventID:     demo.EventID,
		Name:        demo.Name,
		Description: demo.Description,
		Email:       demo.Email,
		URL:         demo.URL,
	})
	if err != nil {
		return domain.Demo{}, fmt.Errorf("r.dao.InsertDemo -> %w", err)
	}

	return r.demoDaoToDomain(created), nil
}

func (r *EventRepository) FindDemoByID(ctx context.Context, id string) (domain.Demo, error) {
	found, err := r.dao.FindDemoByID(ctx, id)
	if err != nil {
		return domain.Demo{}, fmt.Errorf("r.dao.FindDemoByID -> %w", err)
	}

	return r.demoDaoToDomain(found), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:        e.ID,
		Name:      e.Name,
		Date:      e.Date,
		Location:  e.Location,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	for _, d := range e.Demos {
		event.Demos = append(event.Demos, r.demoDaoToDomain(d))
	}
	for _, a := range e.Awards {
		event.Awards = append(event.Awards, domain.Award{
			ID:          a.ID,
			EventID:     a.EventID,
			Name:        a.Name,
			Description: a.Description,
			WinnerID:    a.WinnerID,
		})
	}

	return event
}

func (r *EventRepository) demoDaoToDomain(d dao.Demo) domain.Demo {
	return domain.Demo{
		ID:          d.ID,
		EventID:     d.EventID,
		Name:        d.Name,
		Description: d.Description,
		Email:       d.Email,
		URL:         d.URL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
