// FILE: internal/dto/feature_dto.go
// DTOs for Feature CRUD
package dto

// CreateFeatureRequest adds a new feature to the catalog.
// Feature names are globally unique; FeatureType is an opaque enum value.
type CreateFeatureRequest struct {
	Name        string `json:"name" validate:"required"`
	FeatureType int32  `json:"feature_type"`
}

type CreateFeatureResponse struct {
	Id uint64 `json:"id"`
}

// UpdateFeatureRequest fully replaces the mutable fields of a feature
type UpdateFeatureRequest struct {
	Name        string `json:"name" validate:"required"`
	FeatureType int32  `json:"feature_type"`
}

type FeatureResponse struct {
	Id          uint64 `json:"id"`
	Name        string `json:"name"`
	FeatureType int32  `json:"feature_type"`
}
