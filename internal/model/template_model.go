package model

type Template struct {
	Id          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(255)"`
}

func (Template) TableName() string {
	return "templates"
}
