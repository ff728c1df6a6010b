// FILE: internal/dto/template_dto.go
// DTOs for Template CRUD
package dto

// CreateTemplateRequest adds a new template to the catalog
type CreateTemplateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type CreateTemplateResponse struct {
	Id uint64 `json:"id"`
}

// UpdateTemplateRequest fully replaces the mutable fields of a template
type UpdateTemplateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type TemplateResponse struct {
	Id          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GetAllTemplatesResponse struct {
	Items []*TemplateResponse `json:"items"`
}
