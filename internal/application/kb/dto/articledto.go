package dto

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
)

// ArticleDTO is the application-layer view of a knowledge base article.
// SolutionHTML is only populated on single-article reads.
type ArticleDTO struct {
	ID             uint      `json:"id"`
	ProblemSummary string    `json:"problem_summary"`
	Solution       string    `json:"solution"`
	SolutionHTML   string    `json:"solution_html,omitempty"`
	CategoryID     *uint     `json:"category_id"`
	CategoryName   *string   `json:"category_name,omitempty"`
	Tags           []string  `json:"tags"`
	Confidence     int       `json:"confidence"`
	CreatedBy      uint      `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromEntity(article *kb.Article) *ArticleDTO {
	return &ArticleDTO{
		ID:             article.ID(),
		ProblemSummary: article.ProblemSummary(),
		Solution:       article.Solution(),
		CategoryID:     article.CategoryID(),
		Tags:           article.Tags(),
		Confidence:     article.Confidence(),
		CreatedBy:      article.CreatedBy(),
		CreatedAt:      article.CreatedAt(),
		UpdatedAt:      article.UpdatedAt(),
	}
}
