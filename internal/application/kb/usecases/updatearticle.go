package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type UpdateArticleCommand struct {
	ArticleID      uint
	ProblemSummary *string
	Solution       *string
	CategoryID     *uint
	ClearCategory  bool
	Tags           *[]string
	Confidence     *int
}

type UpdateArticleResult struct {
	ArticleID      uint   `json:"article_id"`
	ProblemSummary string `json:"problem_summary"`
	Solution       string `json:"solution"`
	Confidence     int    `json:"confidence"`
}

type UpdateArticleUseCase struct {
	kbRepo kb.Repository
	logger logger.Interface
}

func NewUpdateArticleUseCase(
	kbRepo kb.Repository,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		kbRepo: kbRepo,
		logger: logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*UpdateArticleResult, error) {
	article, err := uc.kbRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, err
	}

	changed := false

	if cmd.ProblemSummary != nil {
		if err := article.SetProblemSummary(*cmd.ProblemSummary); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed = true
	}
	if cmd.Solution != nil {
		if err := article.SetSolution(*cmd.Solution); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed = true
	}
	if cmd.ClearCategory {
		article.SetCategory(nil)
		changed = true
	} else if cmd.CategoryID != nil {
		article.SetCategory(cmd.CategoryID)
		changed = true
	}
	if cmd.Tags != nil {
		article.SetTags(*cmd.Tags)
		changed = true
	}
	if cmd.Confidence != nil {
		if err := article.SetConfidence(*cmd.Confidence); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed = true
	}

	if !changed {
		return nil, errors.NewValidationError("no valid fields to update")
	}

	if err := uc.kbRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to update KB article", "article_id", cmd.ArticleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("KB article updated", "article_id", cmd.ArticleID)

	return &UpdateArticleResult{
		ArticleID:      article.ID(),
		ProblemSummary: article.ProblemSummary(),
		Solution:       article.Solution(),
		Confidence:     article.Confidence(),
	}, nil
}
