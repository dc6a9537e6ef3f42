package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/application/request/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

type CreateRequestBody struct {
	RequesterName string `json:"requester_name" binding:"required,max=200"`
	Channel       string `json:"channel" binding:"required"`
	Description   string `json:"description" binding:"required,max=10000"`
	Severity      string `json:"severity,omitempty"`
	CategoryID    *uint  `json:"category_id,omitempty"`
}

func (r *CreateRequestBody) ToCommand(creatorID uint) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		RequesterName: r.RequesterName,
		Channel:       r.Channel,
		Description:   r.Description,
		Severity:      r.Severity,
		CategoryID:    r.CategoryID,
		CreatedBy:     creatorID,
	}
}

type UpdateRequestBody struct {
	RequesterName *string `json:"requester_name,omitempty" binding:"omitempty,max=200"`
	Channel       *string `json:"channel,omitempty"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=10000"`
	Severity      *string `json:"severity,omitempty"`
	Status        *string `json:"status,omitempty"`
	CategoryID    *uint   `json:"category_id,omitempty"`
	ClearCategory bool    `json:"clear_category,omitempty"`
	Solution      *string `json:"solution,omitempty" binding:"omitempty,max=10000"`
	IsKBArticle   *bool   `json:"is_kb_article,omitempty"`
}

func (r *UpdateRequestBody) ToCommand(requestID, updatedBy uint) usecases.UpdateRequestCommand {
	return usecases.UpdateRequestCommand{
		RequestID:     requestID,
		RequesterName: r.RequesterName,
		Channel:       r.Channel,
		Description:   r.Description,
		Severity:      r.Severity,
		Status:        r.Status,
		CategoryID:    r.CategoryID,
		ClearCategory: r.ClearCategory,
		Solution:      r.Solution,
		IsKBArticle:   r.IsKBArticle,
		UpdatedBy:     updatedBy,
	}
}

type ListRequestsParams struct {
	Status     string
	CategoryID *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

func (r *ListRequestsParams) ToQuery() usecases.ListRequestsQuery {
	return usecases.ListRequestsQuery{
		Status:     r.Status,
		CategoryID: r.CategoryID,
		Search:     r.Search,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListRequestsParams(c *gin.Context) (*ListRequestsParams, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := &ListRequestsParams{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
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
