package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type AttendanceRepository interface {
	Insert(ctx context.Context, attendance *db_models.Attendance) error
	FindById(ctx context.Context, id string) (*db_models.Attendance, error)
	ListByEvent(ctx context.Context, eventId string) ([]db_models.Attendance, error)
	ListByMember(ctx context.Context, memberId string) ([]db_models.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

func (a *attendanceRepository) Insert(ctx context.Context, attendance *db_models.Attendance) error {
	return a.db.WithContext(ctx).Create(attendance).Error
}

func (a *attendanceRepository) FindById(ctx context.Context, id string) (*db_models.Attendance, error) {
	var attendance db_models.Attendance
	err := a.db.WithContext(ctx).First(&attendance, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &attendance, nil
}

func (a *attendanceRepository) ListByEvent(ctx context.Context, eventId string) ([]db_models.Attendance, error) {
	var rows []db_models.Attendance
	err := a.db.WithContext(ctx).Where("event_id = ?", eventId).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *attendanceRepository) ListByMember(ctx context.Context, memberId string) ([]db_models.Attendance, error) {
	var rows []db_models.Attendance
	err := a.db.WithContext(ctx).Where("member_id = ?", memberId).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
