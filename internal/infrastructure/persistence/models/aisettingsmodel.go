package models

// AISettingsModel is a single-row table; the repository always works with
// the first row and creates it on demand.
type AISettingsModel struct {
	ID                    uint    `gorm:"primaryKey"`
	Provider              string  `gorm:"size:20;not null"`
	APIKey                string  `gorm:"column:api_key;size:255"`
	ModelName             string  `gorm:"size:100;not null"`
	Temperature           float64 `gorm:"not null"`
	MaxTokens             int     `gorm:"not null"`
	ClassifyEnabled       bool    `gorm:"not null;default:true"`
	DraftReplyEnabled     bool    `gorm:"not null;default:true"`
	SummarizeEnabled      bool    `gorm:"not null;default:true"`
	ImproveArticleEnabled bool    `gorm:"not null;default:true"`
	UpdatedAt             int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (AISettingsModel) TableName() string {
	return "ai_settings"
}
