package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type FamilyRepository interface {
	Insert(ctx context.Context, family *db_models.Family) error
	Update(ctx context.Context, family *db_models.Family) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Family, error)
	ListAll(ctx context.Context) ([]db_models.Family, error)
	CountMembers(ctx context.Context, familyId string) (int64, error)
}

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{
		db: db,
	}
}

func (f *familyRepository) Insert(ctx context.Context, family *db_models.Family) error {
	return f.db.WithContext(ctx).Create(family).Error
}

func (f *familyRepository) Update(ctx context.Context, family *db_models.Family) error {
	return f.db.WithContext(ctx).Save(family).Error
}

// Delete removes the family and, via the cascade constraint, its members.
func (f *familyRepository) Delete(ctx context.Context, id string) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.Member{}, "family_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Family{}, "id = ?", id).Error
	})
}

func (f *familyRepository) FindById(ctx context.Context, id string) (*db_models.Family, error) {
	var family db_models.Family
	err := f.db.WithContext(ctx).First(&family, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &family, nil
}

func (f *familyRepository) ListAll(ctx context.Context) ([]db_models.Family, error) {
	var families []db_models.Family
	err := f.db.WithContext(ctx).Find(&families).Error
	if err != nil {
		return nil, err
	}
	return families, nil
}

func (f *familyRepository) CountMembers(ctx context.Context, familyId string) (int64, error) {
	var count int64
	err := f.db.WithContext(ctx).Model(&db_models.Member{}).
		Where("family_id = ?", familyId).Count(&count).Error
	return count, err
}
