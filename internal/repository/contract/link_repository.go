// FILE: internal/repository/contract/link_repository.go
// Repository interface for Link (feature <-> template attachment)
package contract

import (
	"context"

	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"
)

type LinkRepository interface {
	Create(ctx context.Context, link *entity.Link) error
	Update(ctx context.Context, link *entity.Link) error
	// DeleteByPair removes the link identified by its natural
	// (feature, template) key. Reports not-found when no row matches.
	DeleteByPair(ctx context.Context, featureId, templateId uint64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Link, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Link, error)
}
