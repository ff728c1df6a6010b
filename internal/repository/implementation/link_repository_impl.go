// FILE: internal/repository/implementation/link_repository_impl.go
// Implementation of LinkRepository
package implementation

import (
	"context"
	"errors"

	"template-catalog-be/internal/apperr"
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/mapper"
	"template-catalog-be/internal/model"
	"template-catalog-be/internal/repository/contract"
	"template-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LinkMapper
}

func NewLinkRepository(db *gorm.DB) contract.LinkRepository {
	return &LinkRepositoryImpl{
		db:     db,
		mapper: mapper.NewLinkMapper(),
	}
}

func (r *LinkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LinkRepositoryImpl) Create(ctx context.Context, link *entity.Link) error {
	m := r.mapper.ToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Duplicatef("link (%d, %d)", m.FeatureId, m.TemplateId)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.NotFoundf("feature %d or template %d", m.FeatureId, m.TemplateId)
		}
		return err
	}
	*link = *r.mapper.ToEntity(m)
	return nil
}

func (r *LinkRepositoryImpl) Update(ctx context.Context, link *entity.Link) error {
	m := r.mapper.ToModel(link)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.NotFoundf("feature %d or template %d", m.FeatureId, m.TemplateId)
		}
		return err
	}
	*link = *r.mapper.ToEntity(m)
	return nil
}

func (r *LinkRepositoryImpl) DeleteByPair(ctx context.Context, featureId, templateId uint64) error {
	res := r.db.WithContext(ctx).
		Where("feature_id = ? AND template_id = ?", featureId, templateId).
		Delete(&model.Link{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("link (%d, %d)", featureId, templateId)
	}
	return nil
}

func (r *LinkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Link, error) {
	var m model.Link
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Link, error) {
	var models []*model.Link
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
