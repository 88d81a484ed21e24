package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrDemoNotFound  = errors.New("demo not found")
)

type Event struct {
	ID       string    `gorm:"primaryKey"`
	Name     string    `gorm:"not null"`
	Date     time.Time `gorm:"not null"`
	Location string
	Demos    []Demo  `gorm:"foreignKey:EventID"`
	Awards   []Award `gorm:"foreignKey:EventID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Demo struct {
	ID          string `gorm:"primaryKey"`
	EventID     string `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Email       string
	URL         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Award struct {
	ID          string `gorm:"primaryKey"`
	EventID     string `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	WinnerID    *string
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// FindByID loads the full event projection: the event row with its
// demos and awards. This is the secondary fetch target of the sync
// protocol, so it preloads everything in one round trip.
func (d *EventDAO) FindByID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("Demos").
		Preload("Awards").
		First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) InsertDemo(ctx context.Context, demo Demo) (Demo, error) {
	result := d.db.WithContext(ctx).Create(&demo)
	if result.Error != nil {
		return Demo{}, result.Error
	}

	return demo, nil
}

func (d *EventDAO) FindDemoByID(ctx context.Context, id string) (Demo, error) {
	var demo Demo

	result := d.db.WithContext(ctx).First(&demo, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Demo{}, ErrDemoNotFound
		}

		return Demo{}, result.Error
	}

	return demo, nil
}
