package memory

import (
	"context"
	"testing"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollbackRestoresState(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	template := entity.Template{Name: "ephemeral"}
	require.NoError(t, uow.TemplateRepository().Create(ctx, &template))
	require.NoError(t, uow.Rollback())

	check := factory.NewUnitOfWork(ctx)
	all, err := check.TemplateRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rolled back create must not be visible")
}

func TestCommitKeepsState(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	template := entity.Template{Name: "durable"}
	require.NoError(t, uow.TemplateRepository().Create(ctx, &template))
	require.NoError(t, uow.Commit())

	check := factory.NewUnitOfWork(ctx)
	found, err := check.TemplateRepository().FindOne(ctx, specification.ByID{ID: template.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "durable", found.Name)
}

func TestFeatureRepositoryRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	uow := factory.NewUnitOfWork(ctx)

	first := entity.Feature{Name: "Dark Mode", FeatureType: 1}
	require.NoError(t, uow.FeatureRepository().Create(ctx, &first))

	second := entity.Feature{Name: "Dark Mode", FeatureType: 2}
	err := uow.FeatureRepository().Create(ctx, &second)
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicate(err))
}

func TestLinkCreateRejectsMissingReferences(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	uow := factory.NewUnitOfWork(ctx)

	err := uow.LinkRepository().Create(ctx, &entity.Link{FeatureId: 999, TemplateId: 888})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	all, err := uow.LinkRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteReferencedRowsRejected(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	uow := factory.NewUnitOfWork(ctx)

	feature := entity.Feature{Name: "Dark Mode"}
	require.NoError(t, uow.FeatureRepository().Create(ctx, &feature))
	template := entity.Template{Name: "UI Pack"}
	require.NoError(t, uow.TemplateRepository().Create(ctx, &template))
	link := entity.Link{FeatureId: feature.Id, TemplateId: template.Id}
	require.NoError(t, uow.LinkRepository().Create(ctx, &link))

	err := uow.FeatureRepository().Delete(ctx, feature.Id)
	require.Error(t, err)
	assert.True(t, apperr.IsStillReferenced(err))

	err = uow.TemplateRepository().Delete(ctx, template.Id)
	require.Error(t, err)
	assert.True(t, apperr.IsStillReferenced(err))

	require.NoError(t, uow.LinkRepository().DeleteByPair(ctx, feature.Id, template.Id))
	require.NoError(t, uow.FeatureRepository().Delete(ctx, feature.Id))
	require.NoError(t, uow.TemplateRepository().Delete(ctx, template.Id))
}

func TestUnsupportedSpecificationIsRejected(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	uow := factory.NewUnitOfWork(ctx)

	// Links cannot be filtered by name.
	_, err := uow.LinkRepository().FindAll(ctx, specification.ByName{Name: "x"})
	require.Error(t, err)
}
