package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type VolunteerRepository interface {
	Insert(ctx context.Context, volunteer *db_models.Volunteer) error
	Update(ctx context.Context, volunteer *db_models.Volunteer) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Volunteer, error)
	ListActive(ctx context.Context) ([]db_models.Volunteer, error)
	ListByMinistryArea(ctx context.Context, area string) ([]db_models.Volunteer, error)
}

type volunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{
		db: db,
	}
}

func (v *volunteerRepository) Insert(ctx context.Context, volunteer *db_models.Volunteer) error {
	return v.db.WithContext(ctx).Create(volunteer).Error
}

func (v *volunteerRepository) Update(ctx context.Context, volunteer *db_models.Volunteer) error {
	return v.db.WithContext(ctx).Save(volunteer).Error
}

func (v *volunteerRepository) Delete(ctx context.Context, id string) error {
	return v.db.WithContext(ctx).Delete(&db_models.Volunteer{}, "id = ?", id).Error
}

func (v *volunteerRepository) FindById(ctx context.Context, id string) (*db_models.Volunteer, error) {
	var volunteer db_models.Volunteer
	err := v.db.WithContext(ctx).First(&volunteer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &volunteer, nil
}

func (v *volunteerRepository) ListActive(ctx context.Context) ([]db_models.Volunteer, error) {
	var volunteers []db_models.Volunteer
	err := v.db.WithContext(ctx).Where("active = ?", true).Find(&volunteers).Error
	if err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (v *volunteerRepository) ListByMinistryArea(ctx context.Context, area string) ([]db_models.Volunteer, error) {
	var volunteers []db_models.Volunteer
	err := v.db.WithContext(ctx).Where("ministry_area = ? AND active = ?", area, true).Find(&volunteers).Error
	if err != nil {
		return nil, err
	}
	return volunteers, nil
}
