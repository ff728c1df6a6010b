package service

import (
	"context"
	"testing"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateService() ITemplateService {
	factory := memory.NewRepositoryFactory(memory.NewStore())
	return NewTemplateService(factory, nil)
}

func TestTemplateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	created, err := svc.Create(ctx, &dto.CreateTemplateRequest{Name: "A", Description: "d"})
	require.NoError(t, err)
	require.NotZero(t, created.Id)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all.Items, 1)
	assert.Equal(t, created.Id, all.Items[0].Id)
	assert.Equal(t, "A", all.Items[0].Name)
	assert.Equal(t, "d", all.Items[0].Description)

	err = svc.Update(ctx, created.Id, &dto.UpdateTemplateRequest{Name: "B", Description: "e"})
	require.NoError(t, err)

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all.Items, 1)
	assert.Equal(t, "B", all.Items[0].Name)
	assert.Equal(t, "e", all.Items[0].Description)

	err = svc.Delete(ctx, created.Id)
	require.NoError(t, err)

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all.Items)
}

func TestTemplateUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	err := svc.Update(ctx, 42, &dto.UpdateTemplateRequest{Name: "X"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// Store must be unchanged
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all.Items)
}

func TestTemplateDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	err := svc.Delete(ctx, 42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestTemplateGetAllOrderedById(t *testing.T) {
	ctx := context.Background()
	svc := newTemplateService()

	first, err := svc.Create(ctx, &dto.CreateTemplateRequest{Name: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &dto.CreateTemplateRequest{Name: "second"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	assert.Equal(t, first.Id, all.Items[0].Id)
	assert.Equal(t, second.Id, all.Items[1].Id)
}
