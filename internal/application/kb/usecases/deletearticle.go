package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
}

type DeleteArticleResult struct {
	ArticleID      uint   `json:"article_id"`
	ProblemSummary string `json:"problem_summary"`
}

type DeleteArticleUseCase struct {
	kbRepo kb.Repository
	logger logger.Interface
}

func NewDeleteArticleUseCase(
	kbRepo kb.Repository,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		kbRepo: kbRepo,
		logger: logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) (*DeleteArticleResult, error) {
	article, err := uc.kbRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, err
	}

	if err := uc.kbRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete KB article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("KB article deleted", "article_id", cmd.ArticleID)

	return &DeleteArticleResult{
		ArticleID:      article.ID(),
		ProblemSummary: article.ProblemSummary(),
	}, nil
}
