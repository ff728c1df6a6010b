// FILE: internal/mapper/link_mapper.go
// Mapper for Link entity <-> model conversion
package mapper

import (
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/model"
)

type LinkMapper struct{}

func NewLinkMapper() *LinkMapper {
	return &LinkMapper{}
}

func (m *LinkMapper) ToEntity(model *model.Link) *entity.Link {
	if model == nil {
		return nil
	}
	return &entity.Link{
		Id:         model.Id,
		FeatureId:  model.FeatureId,
		TemplateId: model.TemplateId,
		Value:      model.Value,
	}
}

func (m *LinkMapper) ToModel(entity *entity.Link) *model.Link {
	if entity == nil {
		return nil
	}
	return &model.Link{
		Id:         entity.Id,
		FeatureId:  entity.FeatureId,
		TemplateId: entity.TemplateId,
		Value:      entity.Value,
	}
}

func (m *LinkMapper) ToEntities(models []*model.Link) []*entity.Link {
	entities := make([]*entity.Link, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
