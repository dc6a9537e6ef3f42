package mappers

import (
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// SupportRequestMapper handles the conversion between request domain
// entities and persistence models.
type SupportRequestMapper interface {
	ToModel(req *request.Request) *models.SupportRequestModel
	ToDomain(model *models.SupportRequestModel) (*request.Request, error)
}

type SupportRequestMapperImpl struct{}

func NewSupportRequestMapper() SupportRequestMapper {
	return &SupportRequestMapperImpl{}
}

func (m *SupportRequestMapperImpl) ToModel(req *request.Request) *models.SupportRequestModel {
	return &models.SupportRequestModel{
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
		CreatedAt:        req.CreatedAt().UnixMilli(),
		UpdatedAt:        req.UpdatedAt().UnixMilli(),
		ClosedAt:         timePtrToMillisPtr(req.ClosedAt()),
	}
}

func (m *SupportRequestMapperImpl) ToDomain(model *models.SupportRequestModel) (*request.Request, error) {
	return request.ReconstructRequest(
		model.ID,
		model.RequesterName,
		vo.Channel(model.Channel),
		model.Description,
		model.CategoryID,
		vo.Severity(model.Severity),
		vo.Status(model.Status),
		model.AIRecommendation,
		model.AIReply,
		model.Solution,
		model.IsKBArticle,
		model.CreatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		millisPtrToTimePtr(model.ClosedAt),
	)
}
