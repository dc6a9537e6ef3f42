package mappers

import (
	"gorm.io/datatypes"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

// KBArticleMapper handles the conversion between knowledge base article
// domain entities and persistence models.
type KBArticleMapper interface {
	ToModel(article *kb.Article) *models.KBArticleModel
	ToDomain(model *models.KBArticleModel) (*kb.Article, error)
}

type KBArticleMapperImpl struct{}

func NewKBArticleMapper() KBArticleMapper {
	return &KBArticleMapperImpl{}
}

func (m *KBArticleMapperImpl) ToModel(article *kb.Article) *models.KBArticleModel {
	return &models.KBArticleModel{
		ID:             article.ID(),
		ProblemSummary: article.ProblemSummary(),
		Solution:       article.Solution(),
		CategoryID:     article.CategoryID(),
		Tags:           datatypes.NewJSONSlice(article.Tags()),
		Confidence:     article.Confidence(),
		CreatedBy:      article.CreatedBy(),
		CreatedAt:      article.CreatedAt().UnixMilli(),
		UpdatedAt:      article.UpdatedAt().UnixMilli(),
	}
}

func (m *KBArticleMapperImpl) ToDomain(model *models.KBArticleModel) (*kb.Article, error) {
	return kb.ReconstructArticle(
		model.ID,
		model.ProblemSummary,
		model.Solution,
		model.CategoryID,
		model.Tags,
		model.Confidence,
		model.CreatedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
