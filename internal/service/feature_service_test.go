package service

import (
	"context"
	"testing"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/repository/memory"
	"template-catalog-be/internal/repository/specification"
	"template-catalog-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeatureService() (IFeatureService, unitofwork.RepositoryFactory) {
	factory := memory.NewRepositoryFactory(memory.NewStore())
	return NewFeatureService(factory, nil), factory
}

func TestFeatureNameUniqueness(t *testing.T) {
	ctx := context.Background()
	svc, factory := newFeatureService()

	created, err := svc.Create(ctx, &dto.CreateFeatureRequest{Name: "Dark Mode", FeatureType: 1})
	require.NoError(t, err)
	require.NotZero(t, created.Id)

	_, err = svc.Create(ctx, &dto.CreateFeatureRequest{Name: "Dark Mode", FeatureType: 2})
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicate(err))

	// Exactly one stored row
	uow := factory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, features, 1)
}

func TestFeatureUpdate(t *testing.T) {
	ctx := context.Background()
	svc, factory := newFeatureService()

	created, err := svc.Create(ctx, &dto.CreateFeatureRequest{Name: "Export", FeatureType: 0})
	require.NoError(t, err)

	err = svc.Update(ctx, created.Id, &dto.UpdateFeatureRequest{Name: "Export CSV", FeatureType: 3})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	require.NotNil(t, feature)
	assert.Equal(t, "Export CSV", feature.Name)
	assert.Equal(t, int32(3), feature.FeatureType)
}

func TestFeatureUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureService()

	err := svc.Update(ctx, 99, &dto.UpdateFeatureRequest{Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFeatureDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFeatureService()

	err := svc.Delete(ctx, 99)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
