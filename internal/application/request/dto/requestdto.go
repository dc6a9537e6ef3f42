package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
)

// RequestDTO is the application-layer view of a support request.
type RequestDTO struct {
	ID               uint       `json:"id"`
	RequesterName    string     `json:"requester_name"`
	Channel          string     `json:"channel"`
	Description      string     `json:"description"`
	CategoryID       *uint      `json:"category_id"`
	CategoryName     *string    `json:"category_name,omitempty"`
	Severity         string     `json:"severity"`
	Status           string     `json:"status"`
	AIRecommendation *string    `json:"ai_recommendation"`
	AIReply          *string    `json:"ai_reply"`
	Solution         *string    `json:"solution"`
	IsKBArticle      bool       `json:"is_kb_article"`
	CreatedBy        uint       `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ClosedAt         *time.Time `json:"closed_at"`
}

func FromEntity(req *request.Request) *RequestDTO {
	return &RequestDTO{
		ID:               req.ID(),
		RequesterName:    req.RequesterName(),
		Channel:          req.Channel().String(),
		Description:      req.Description(),
		CategoryID:       req.CategoryID(),
		Severity:         req.Severity().String(),
		Status:           req.Status().String(),
		AIRecommendation: req.AIRecommendation(),
		AIReply:          req.AIReply(),
		Solution:         req.Solution(),
		IsKBArticle:      req.IsKBArticle(),
		CreatedBy:        req.CreatedBy(),
		CreatedAt:        req.CreatedAt(),
		UpdatedAt:        req.UpdatedAt(),
		ClosedAt:         req.ClosedAt(),
	}
}
