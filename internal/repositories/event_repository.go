package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Event, error)
	ListAll(ctx context.Context) ([]db_models.Event, error)
	CountRegistrations(ctx context.Context, eventId string) (int64, error)
	InsertRegistration(ctx context.Context, reg *db_models.EventRegistration) error
	ListRegistrations(ctx context.Context, eventId string) ([]db_models.EventRegistration, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (e *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Create(event).Error
}

func (e *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Save(event).Error
}

func (e *eventRepository) Delete(ctx context.Context, id string) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.EventRegistration{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.Attendance{}, "event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Event{}, "id = ?", id).Error
	})
}

func (e *eventRepository) FindById(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := e.db.WithContext(ctx).First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (e *eventRepository) ListAll(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	err := e.db.WithContext(ctx).Order("start_date").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (e *eventRepository) CountRegistrations(ctx context.Context, eventId string) (int64, error) {
	var count int64
	err := e.db.WithContext(ctx).Model(&db_models.EventRegistration{}).
		Where("event_id = ?", eventId).Count(&count).Error
	return count, err
}

func (e *eventRepository) InsertRegistration(ctx context.Context, reg *db_models.EventRegistration) error {
	return e.db.WithContext(ctx).Create(reg).Error
}

func (e *eventRepository) ListRegistrations(ctx context.Context, eventId string) ([]db_models.EventRegistration, error) {
	var regs []db_models.EventRegistration
	err := e.db.WithContext(ctx).Where("event_id = ?", eventId).Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
