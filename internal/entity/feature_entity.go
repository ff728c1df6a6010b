package entity

type Feature struct {
	Id          uint64
	Name        string
	FeatureType int32
}
