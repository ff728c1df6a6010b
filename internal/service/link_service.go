// FILE: internal/service/link_service.go
package service

import (
	"context"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"
	"template-catalog-be/internal/repository/unitofwork"
)

type ILinkService interface {
	Create(ctx context.Context, req *dto.CreateLinkRequest) (*dto.CreateLinkResponse, error)
	Update(ctx context.Context, linkId uint64, req *dto.UpdateLinkRequest) error
	Delete(ctx context.Context, featureId, templateId uint64) error
	GetFeaturesByTemplateId(ctx context.Context, templateId uint64) (*dto.GetTemplateFeaturesResponse, error)
}

type linkService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewLinkService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ILinkService {
	return &linkService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// Create attaches a feature to a template. Linking an already linked
// (feature, template) pair is a no-op: the response carries no id and no
// error. The pre-check and insert share one transaction.
func (s *linkService) Create(ctx context.Context, req *dto.CreateLinkRequest) (*dto.CreateLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	existing, err := uow.LinkRepository().FindOne(ctx, specification.ByFeatureAndTemplate{
		FeatureID:  req.FeatureId,
		TemplateID: req.TemplateId,
	})
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if existing != nil {
		// Nothing written, release the session.
		_ = uow.Rollback()
		return &dto.CreateLinkResponse{}, nil
	}

	link := entity.Link{
		FeatureId:  req.FeatureId,
		TemplateId: req.TemplateId,
		Value:      req.Value,
	}
	if err := uow.LinkRepository().Create(ctx, &link); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishCatalogChange(ctx, s.publisherService, "link", "created", link.Id)

	return &dto.CreateLinkResponse{
		Id: &link.Id,
	}, nil
}

func (s *linkService) Update(ctx context.Context, linkId uint64, req *dto.UpdateLinkRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	template, err := uow.TemplateRepository().FindOne(ctx, specification.ByID{ID: req.TemplateId})
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if template == nil {
		_ = uow.Rollback()
		return apperr.NotFoundf("template %d", req.TemplateId)
	}

	link, err := uow.LinkRepository().FindOne(ctx, specification.ByID{ID: linkId})
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if link == nil {
		_ = uow.Rollback()
		return apperr.NotFoundf("link %d", linkId)
	}

	link.FeatureId = req.FeatureId
	link.TemplateId = req.TemplateId
	link.Value = req.Value
	if err := uow.LinkRepository().Update(ctx, link); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishCatalogChange(ctx, s.publisherService, "link", "updated", linkId)
	return nil
}

func (s *linkService) Delete(ctx context.Context, featureId, templateId uint64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	link, err := uow.LinkRepository().FindOne(ctx, specification.ByFeatureAndTemplate{
		FeatureID:  featureId,
		TemplateID: templateId,
	})
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if link == nil {
		_ = uow.Rollback()
		return apperr.NotFoundf("link (%d, %d)", featureId, templateId)
	}

	if err := uow.LinkRepository().DeleteByPair(ctx, featureId, templateId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishCatalogChange(ctx, s.publisherService, "link", "deleted", link.Id)
	return nil
}

// GetFeaturesByTemplateId resolves every feature linked to the template,
// paired with its link row. Two sequential lookups, joined in memory. A
// link whose feature has since been deleted is skipped silently.
func (s *linkService) GetFeaturesByTemplateId(ctx context.Context, templateId uint64) (*dto.GetTemplateFeaturesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	links, err := uow.LinkRepository().FindAll(ctx,
		specification.ByTemplateID{TemplateID: templateId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := &dto.GetTemplateFeaturesResponse{
		Items: make([]*dto.TemplateFeatureItem, 0, len(links)),
	}
	if len(links) == 0 {
		return result, nil
	}

	featureIds := make([]uint64, 0, len(links))
	for _, link := range links {
		featureIds = append(featureIds, link.FeatureId)
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specification.ByIDs{IDs: featureIds})
	if err != nil {
		return nil, err
	}
	featuresById := make(map[uint64]*entity.Feature, len(features))
	for _, feature := range features {
		featuresById[feature.Id] = feature
	}

	for _, link := range links {
		feature, ok := featuresById[link.FeatureId]
		if !ok {
			// Dangling link, its feature is gone.
			continue
		}
		result.Items = append(result.Items, &dto.TemplateFeatureItem{
			Feature: &dto.FeatureResponse{
				Id:          feature.Id,
				Name:        feature.Name,
				FeatureType: feature.FeatureType,
			},
			Link: &dto.LinkResponse{
				Id:         link.Id,
				FeatureId:  link.FeatureId,
				TemplateId: link.TemplateId,
				Value:      link.Value,
			},
		})
	}

	return result, nil
}
