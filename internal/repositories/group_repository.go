package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shepherd/internal/models/db_models"
)

type GroupRepository interface {
	Insert(ctx context.Context, group *db_models.Group) error
	Update(ctx context.Context, group *db_models.Group) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Group, error)
	ListActive(ctx context.Context) ([]db_models.Group, error)
	AddMember(ctx context.Context, group *db_models.Group, member *db_models.Member) error
	RemoveMember(ctx context.Context, group *db_models.Group, member *db_models.Member) error
	ListMembers(ctx context.Context, group *db_models.Group) ([]db_models.Member, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{
		db: db,
	}
}

func (g *groupRepository) Insert(ctx context.Context, group *db_models.Group) error {
	return g.db.WithContext(ctx).Create(group).Error
}

func (g *groupRepository) Update(ctx context.Context, group *db_models.Group) error {
	return g.db.WithContext(ctx).Save(group).Error
}

func (g *groupRepository) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&db_models.Group{}, "id = ?", id).Error
}

func (g *groupRepository) FindById(ctx context.Context, id string) (*db_models.Group, error) {
	var group db_models.Group
	err := g.db.WithContext(ctx).First(&group, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}

func (g *groupRepository) ListActive(ctx context.Context) ([]db_models.Group, error) {
	var groups []db_models.Group
	err := g.db.WithContext(ctx).Where("active = ?", true).Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (g *groupRepository) AddMember(ctx context.Context, group *db_models.Group, member *db_models.Member) error {
	return g.db.WithContext(ctx).Model(group).Association("Members").Append(member)
}

func (g *groupRepository) RemoveMember(ctx context.Context, group *db_models.Group, member *db_models.Member) error {
	return g.db.WithContext(ctx).Model(group).Association("Members").Delete(member)
}

func (g *groupRepository) ListMembers(ctx context.Context, group *db_models.Group) ([]db_models.Member, error) {
	var members []db_models.Member
	err := g.db.WithContext(ctx).Model(group).Association("Members").Find(&members)
	if err != nil {
		return nil, err
	}
	return members, nil
}
