package entity

type Link struct {
	Id         uint64
	FeatureId  uint64
	TemplateId uint64
	Value      string
}
