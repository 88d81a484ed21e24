package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/demo-night-api/internal/domain"
	"github.com/vietanh2810/demo-night-api/internal/repository/dao"
)

var (
	ErrAttendeeEmailExists = dao.ErrAttendeeEmailExists
	ErrAttendeeNotFound    = dao.ErrAttendeeNotFound
)

type AttendeeDAO interface {
	Insert(ctx context.Context, attendee dao.Attendee) (dao.Attendee, error)
	FindByID(ctx context.Context, id uint) (dao.Attendee, error)
	FindByEmail(ctx context.Context, email string) (dao.Attendee, error)
}

type AttendeeRepository struct {
	dao AttendeeDAO
}

func NewAttendeeRepository(dao AttendeeDAO) *AttendeeRepository {
	return &AttendeeRepository{
		dao: dao,
	}
}

func (r *AttendeeRepository) Create(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	created, err := r.dao.Insert(ctx, dao.Attendee{
		Email:    attendee.Email,
		Password: attendee.Password,
		Name:     attendee.Name,
		Type:     attendee.Type,
	})
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AttendeeRepository) FindByID(ctx context.Context, id uint) (domain.Attendee, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AttendeeRepository) FindByEmail(ctx context.Context, email string) (domain.Attendee, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AttendeeRepository) daoToDomain(a dao.Attendee) domain.Attendee {
	return domain.Attendee{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Type:      a.Type,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
