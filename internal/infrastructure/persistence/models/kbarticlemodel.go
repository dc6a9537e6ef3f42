package models

import "gorm.io/datatypes"

type KBArticleModel struct {
	ID             uint                           `gorm:"primaryKey"`
	ProblemSummary string                         `gorm:"type:text;not null"`
	Solution       string                         `gorm:"type:text;not null"`
	CategoryID     *uint                          `gorm:"index"`
	Tags           datatypes.JSONSlice[string]    `gorm:"type:json"`
	Confidence     int                            `gorm:"not null;default:3"`
	CreatedBy      uint                           `gorm:"not null;index"`
	CreatedAt      int64                          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64                          `gorm:"autoUpdateTime:milli;not null"`
}

func (KBArticleModel) TableName() string {
	return "kb_articles"
}
