package unitofwork

import (
	"context"

	"template-catalog-be/internal/repository/contract"
)

// UnitOfWork scopes one atomic database session around a single catalog
// operation. Mutations run between Begin and Commit; every failure path
// must Rollback so no session leaks.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TemplateRepository() contract.TemplateRepository
	FeatureRepository() contract.FeatureRepository
	LinkRepository() contract.LinkRepository
}
