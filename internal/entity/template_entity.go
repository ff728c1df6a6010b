package entity

type Template struct {
	Id          uint64
	Name        string
	Description string
}
