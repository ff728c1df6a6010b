package model

// Link joins one feature to one template. The (FeatureId, TemplateId)
// pair is treated as unique at the application level.
type Link struct {
	Id         uint64 `gorm:"primaryKey;autoIncrement"`
	FeatureId  uint64 `gorm:"not null;index"`
	TemplateId uint64 `gorm:"not null;index"`
	Value      string `gorm:"type:text"`
}

func (Link) TableName() string {
	return "links"
}
