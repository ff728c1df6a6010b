// FILE: internal/repository/contract/template_repository.go
// Repository interface for Template
package contract

import (
	"context"

	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	Update(ctx context.Context, template *entity.Template) error
	Delete(ctx context.Context, id uint64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
}
