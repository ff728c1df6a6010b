// FILE: internal/model/feature_model.go
// GORM model for the features table
package model

// Feature represents a capability that can be attached to templates.
// Name is unique across the whole catalog.
type Feature struct {
	Id          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FeatureType int32  `gorm:"not null;default:0"`
}

func (Feature) TableName() string {
	return "features"
}
