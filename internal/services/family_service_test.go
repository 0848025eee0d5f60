package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
	"gorm.io/gorm"
)

func newFamilyService(t *testing.T) (FamilyServiceInterface, *gorm.DB) {
	db := newTestDB(t)
	return NewFamilyService(repositories.NewFamilyRepository(db)), db
}

func TestCreateFamilyCountsMembers(t *testing.T) {
	svc, db := newFamilyService(t)

	family, err := svc.CreateFamily(context.Background(), request_models.FamilyRequest{FamilyName: "Johnson"})
	require.NoError(t, err)
	assert.Equal(t, 0, family.Members)

	familyId, err := uuid.Parse(family.ID)
	require.NoError(t, err)

	member := seedMember(t, db, "Kid", "Johnson", "kid@example.com")
	member.FamilyID = &familyId
	require.NoError(t, repositories.NewMemberRepository(db).Update(context.Background(), member))

	fetched, err := svc.GetFamilyById(context.Background(), family.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.Members)
}

func TestCreateFamilyValidation(t *testing.T) {
	svc, _ := newFamilyService(t)

	_, err := svc.CreateFamily(context.Background(), request_models.FamilyRequest{FamilyName: "   "})
	assert.True(t, errors.Is(err, utils.ErrValidation))
}

func TestDeleteFamilyRemovesMembers(t *testing.T) {
	svc, db := newFamilyService(t)

	family, err := svc.CreateFamily(context.Background(), request_models.FamilyRequest{FamilyName: "Short-Lived"})
	require.NoError(t, err)

	familyId, err := uuid.Parse(family.ID)
	require.NoError(t, err)

	member := seedMember(t, db, "Soon", "Gone", "soon@example.com")
	member.FamilyID = &familyId
	require.NoError(t, repositories.NewMemberRepository(db).Update(context.Background(), member))

	require.NoError(t, svc.DeleteFamily(context.Background(), family.ID))

	_, err = svc.GetFamilyById(context.Background(), family.ID)
	assert.ErrorIs(t, err, utils.ErrFamilyNotFound)

	var count int64
	require.NoError(t, db.Model(&db_models.Member{}).Where("family_id = ?", family.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateFamily(t *testing.T) {
	svc, _ := newFamilyService(t)

	family, err := svc.CreateFamily(context.Background(), request_models.FamilyRequest{FamilyName: "Old Name"})
	require.NoError(t, err)

	updated, err := svc.UpdateFamily(context.Background(), family.ID,
		request_models.FamilyRequest{FamilyName: "New Name", Address: "12 Hill St"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FamilyName)
	assert.Equal(t, "12 Hill St", updated.Address)

	_, err = svc.UpdateFamily(context.Background(), "11111111-2222-3333-4444-555555555555",
		request_models.FamilyRequest{FamilyName: "X"})
	assert.ErrorIs(t, err, utils.ErrFamilyNotFound)
}
