package kb

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/kb/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type CreateArticleBody struct {
	ProblemSummary string   `json:"problem_summary" binding:"required,max=2000"`
	Solution       string   `json:"solution" binding:"required,max=10000"`
	CategoryID     *uint    `json:"category_id,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

func (r *CreateArticleBody) ToCommand(creatorID uint) usecases.CreateArticleCommand {
	return usecases.CreateArticleCommand{
		ProblemSummary: r.ProblemSummary,
		Solution:       r.Solution,
		CategoryID:     r.CategoryID,
		Tags:           r.Tags,
		CreatedBy:      creatorID,
	}
}

type CreateFromRequestBody struct {
	RequestID uint `json:"request_id" binding:"required"`
}

type UpdateArticleBody struct {
	ProblemSummary *string   `json:"problem_summary,omitempty" binding:"omitempty,max=2000"`
	Solution       *string   `json:"solution,omitempty" binding:"omitempty,max=10000"`
	CategoryID     *uint     `json:"category_id,omitempty"`
	ClearCategory  bool      `json:"clear_category,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	Confidence     *int      `json:"confidence,omitempty"`
}

func (r *UpdateArticleBody) ToCommand(articleID uint) usecases.UpdateArticleCommand {
	return usecases.UpdateArticleCommand{
		ArticleID:      articleID,
		ProblemSummary: r.ProblemSummary,
		Solution:       r.Solution,
		CategoryID:     r.CategoryID,
		ClearCategory:  r.ClearCategory,
		Tags:           r.Tags,
		Confidence:     r.Confidence,
	}
}

type ListArticlesParams struct {
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
}

func (r *ListArticlesParams) ToQuery() usecases.ListArticlesQuery {
	return usecases.ListArticlesQuery{
		CategoryID: r.CategoryID,
		Search:     r.Search,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

func parseListArticlesParams(c *gin.Context) (*ListArticlesParams, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := &ListArticlesParams{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid category_id")
		}
		id := uint(categoryID)
		params.CategoryID = &id
	}

	return params, nil
}
