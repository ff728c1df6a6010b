// FILE: internal/service/feature_service.go
package service

import (
	"context"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"
	"template-catalog-be/internal/repository/unitofwork"
)

type IFeatureService interface {
	Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.CreateFeatureResponse, error)
	Update(ctx context.Context, id uint64, req *dto.UpdateFeatureRequest) error
	Delete(ctx context.Context, id uint64) error
}

type featureService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IFeatureService {
	return &featureService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *featureService) Create(ctx context.Context, req *dto.CreateFeatureRequest) (*dto.CreateFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	feature := entity.Feature{
		Name:        req.Name,
		FeatureType: req.FeatureType,
	}
	if err := uow.FeatureRepository().Create(ctx, &feature); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishCatalogChange(ctx, s.publisherService, "feature", "created", feature.Id)

	return &dto.CreateFeatureResponse{
		Id: feature.Id,
	}, nil
}

func (s *featureService) Update(ctx context.Context, id uint64, req *dto.UpdateFeatureRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if feature == nil {
		_ = uow.Rollback()
		return apperr.NotFoundf("feature %d", id)
	}

	feature.Name = req.Name
	feature.FeatureType = req.FeatureType
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishCatalogChange(ctx, s.publisherService, "feature", "updated", id)
	return nil
}

func (s *featureService) Delete(ctx context.Context, id uint64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.FeatureRepository().Delete(ctx, id); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishCatalogChange(ctx, s.publisherService, "feature", "deleted", id)
	return nil
}
