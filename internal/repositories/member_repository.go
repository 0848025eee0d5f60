package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	Update(ctx context.Context, member *db_models.Member) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]db_models.Member, error)
	ListByFamily(ctx context.Context, familyId string) ([]db_models.Member, error)
	Search(ctx context.Context, term string) ([]db_models.Member, error)
	ListByMembershipDateRange(ctx context.Context, start, end string) ([]db_models.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (m *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return m.db.WithContext(ctx).Create(member).Error
}

func (m *memberRepository) Update(ctx context.Context, member *db_models.Member) error {
	return m.db.WithContext(ctx).Save(member).Error
}

func (m *memberRepository) Delete(ctx context.Context, id string) error {
	return m.db.WithContext(ctx).Delete(&db_models.Member{}, "id = ?", id).Error
}

func (m *memberRepository) FindById(ctx context.Context, id string) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).First(&member, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).First(&member, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Model(&db_models.Member{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (m *memberRepository) ListActive(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).Where("active = ?", true).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *memberRepository) ListByFamily(ctx context.Context, familyId string) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).Where("family_id = ?", familyId).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Search is a case-insensitive substring match over first and last name.
func (m *memberRepository) Search(ctx context.Context, term string) ([]db_models.Member, error) {
	var members []db_models.Member
	pattern := "%" + term + "%"
	err := m.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", pattern, pattern).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *memberRepository) ListByMembershipDateRange(ctx context.Context, start, end string) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).
		Where("membership_date >= ? AND membership_date <= ?", start, end).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
