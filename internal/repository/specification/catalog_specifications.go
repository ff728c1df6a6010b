package specification

import "gorm.io/gorm"

// ByName filters by exact name (features have a unique name)
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByTemplateID filters links by their template
type ByTemplateID struct {
	TemplateID uint64
}

func (s ByTemplateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("template_id = ?", s.TemplateID)
}

// ByFeatureAndTemplate filters links by their natural (feature, template) pair
type ByFeatureAndTemplate struct {
	FeatureID  uint64
	TemplateID uint64
}

func (s ByFeatureAndTemplate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ? AND template_id = ?", s.FeatureID, s.TemplateID)
}
