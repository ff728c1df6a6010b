// FILE: internal/dto/link_dto.go
// DTOs for Link operations (feature <-> template attachments)
package dto

// CreateLinkRequest attaches a feature to a template with an optional value
type CreateLinkRequest struct {
	FeatureId  uint64 `json:"feature_id" validate:"required"`
	TemplateId uint64 `json:"template_id" validate:"required"`
	Value      string `json:"value,omitempty"`
}

// CreateLinkResponse carries the new link id. Id is null when the
// (feature, template) pair was already linked and the call was a no-op.
type CreateLinkResponse struct {
	Id *uint64 `json:"id,omitempty"`
}

// UpdateLinkRequest rewrites an existing link (link id comes from the path)
type UpdateLinkRequest struct {
	FeatureId  uint64 `json:"feature_id" validate:"required"`
	TemplateId uint64 `json:"template_id" validate:"required"`
	Value      string `json:"value,omitempty"`
}

type LinkResponse struct {
	Id         uint64 `json:"id"`
	FeatureId  uint64 `json:"feature_id"`
	TemplateId uint64 `json:"template_id"`
	Value      string `json:"value"`
}

// TemplateFeatureItem is one element of the template-features join:
// the feature itself plus the link row that attaches it.
type TemplateFeatureItem struct {
	Feature *FeatureResponse `json:"feature"`
	Link    *LinkResponse    `json:"link"`
}

type GetTemplateFeaturesResponse struct {
	Items []*TemplateFeatureItem `json:"items"`
}
