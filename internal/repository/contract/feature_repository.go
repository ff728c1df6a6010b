// FILE: internal/repository/contract/feature_repository.go
// Repository interface for Feature
package contract

import (
	"context"

	"template-catalog-be/internal/entity"
	"template-catalog-be/internal/repository/specification"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id uint64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
}
