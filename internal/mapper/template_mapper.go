// FILE: internal/mapper/template_mapper.go
// Mapper for Template entity <-> model conversion
package mapper

import (
	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(model *model.Template) *entity.Template {
	if model == nil {
		return nil
	}
	return &entity.Template{
		Id:          model.Id,
		Name:        model.Name,
		Description: model.Description,
	}
}

func (m *TemplateMapper) ToModel(entity *entity.Template) *model.Template {
	if entity == nil {
		return nil
	}
	return &model.Template{
		Id:          entity.Id,
		Name:        entity.Name,
		Description: entity.Description,
	}
}

func (m *TemplateMapper) ToEntities(models []*model.Template) []*entity.Template {
	entities := make([]*entity.Template, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
