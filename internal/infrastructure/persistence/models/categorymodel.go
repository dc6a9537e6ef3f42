package models

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
