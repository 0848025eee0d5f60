package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type DonationRepository interface {
	Insert(ctx context.Context, donation *db_models.Donation) error
	Update(ctx context.Context, donation *db_models.Donation) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Donation, error)
	ListAll(ctx context.Context) ([]db_models.Donation, error)
	ListByMember(ctx context.Context, memberId string) ([]db_models.Donation, error)
	ListByTypeAndDateRange(ctx context.Context, donationType string, start, end int64) ([]db_models.Donation, error)
	SumByMember(ctx context.Context, memberId string) (int64, error)
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{
		db: db,
	}
}

func (d *donationRepository) Insert(ctx context.Context, donation *db_models.Donation) error {
	return d.db.WithContext(ctx).Create(donation).Error
}

func (d *donationRepository) Update(ctx context.Context, donation *db_models.Donation) error {
	return d.db.WithContext(ctx).Save(donation).Error
}

func (d *donationRepository) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Delete(&db_models.Donation{}, "id = ?", id).Error
}

func (d *donationRepository) FindById(ctx context.Context, id string) (*db_models.Donation, error) {
	var donation db_models.Donation
	err := d.db.WithContext(ctx).First(&donation, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &donation, nil
}

func (d *donationRepository) ListAll(ctx context.Context) ([]db_models.Donation, error) {
	var donations []db_models.Donation
	err := d.db.WithContext(ctx).Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (d *donationRepository) ListByMember(ctx context.Context, memberId string) ([]db_models.Donation, error) {
	var donations []db_models.Donation
	err := d.db.WithContext(ctx).Where("member_id = ?", memberId).Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (d *donationRepository) ListByTypeAndDateRange(ctx context.Context, donationType string, start, end int64) ([]db_models.Donation, error) {
	var donations []db_models.Donation
	err := d.db.WithContext(ctx).
		Where("donation_type = ? AND donation_date >= ? AND donation_date <= ?", donationType, start, end).
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (d *donationRepository) SumByMember(ctx context.Context, memberId string) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).Model(&db_models.Donation{}).
		Where("member_id = ?", memberId).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total).Error
	return total, err
}
