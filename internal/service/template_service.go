// FILE: internal/service/template_service.go
package service

import (
	"context"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/dto"
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"
	"template-catalog-be/internal/repository/unitofwork"
)

type ITemplateService interface {
	Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error)
	Update(ctx context.Context, id uint64, req *dto.UpdateTemplateRequest) error
	Delete(ctx context.Context, id uint64) error
	GetAll(ctx context.Context) (*dto.GetAllTemplatesResponse, error)
}

type templateService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewTemplateService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ITemplateService {
	return &templateService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *templateService) Create(ctx context.Context, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	template := entity.Template{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := uow.TemplateRepository().Create(ctx, &template); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishCatalogChange(ctx, s.publisherService, "template", "created", template.Id)

	return &dto.CreateTemplateResponse{
		Id: template.Id,
	}, nil
}

func (s *templateService) Update(ctx context.Context, id uint64, req *dto.UpdateTemplateRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	template, err := uow.TemplateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		_ = uow.Rollback()
		return err
	}
	if template == nil {
		_ = uow.Rollback()
		return apperr.NotFoundf("template %d", id)
	}

	template.Name = req.Name
	template.Description = req.Description
	if err := uow.TemplateRepository().Update(ctx, template); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishCatalogChange(ctx, s.publisherService, "template", "updated", id)
	return nil
}

func (s *templateService) Delete(ctx context.Context, id uint64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.TemplateRepository().Delete(ctx, id); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishCatalogChange(ctx, s.publisherService, "template", "deleted", id)
	return nil
}

func (s *templateService) GetAll(ctx context.Context) (*dto.GetAllTemplatesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.TemplateRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TemplateResponse, 0, len(templates))
	for _, template := range templates {
		items = append(items, &dto.TemplateResponse{
			Id:          template.Id,
			Name:        template.Name,
			Description: template.Description,
		})
	}

	return &dto.GetAllTemplatesResponse{Items: items}, nil
}
