package models

type SupportRequestModel struct {
	ID               uint    `gorm:"primaryKey"`
	RequesterName    string  `gorm:"size:100;not null"`
	Channel          string  `gorm:"size:20;not null;index"`
	Description      string  `gorm:"type:text;not null"`
	CategoryID       *uint   `gorm:"index"`
	Severity         string  `gorm:"size:20;not null;index"`
	Status           string  `gorm:"size:20;not null;index"`
	AIRecommendation *string `gorm:"type:text"`
	AIReply          *string `gorm:"type:text"`
	Solution         *string `gorm:"type:text"`
	IsKBArticle      bool    `gorm:"not null;default:false"`
	CreatedBy        uint    `gorm:"not null;index"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt         *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (SupportRequestModel) TableName() string {
	return "support_requests"
}
