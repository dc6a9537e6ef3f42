package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/ai"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateArticleCommand struct {
	ProblemSummary string
	Solution       string
	CategoryID     *uint
	Tags           []string
	CreatedBy      uint
}

type CreateArticleResult struct {
	ArticleID      uint   `json:"article_id"`
	ProblemSummary string `json:"problem_summary"`
	Solution       string `json:"solution"`
	Confidence     int    `json:"confidence"`
	Improved       bool   `json:"improved"`
}

type CreateArticleUseCase struct {
	kbRepo   kb.Repository
	aiClient ai.Client
	logger   logger.Interface
}

func NewCreateArticleUseCase(
	kbRepo kb.Repository,
	aiClient ai.Client,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		kbRepo:   kbRepo,
		aiClient: aiClient,
		logger:   logger,
	}
}

// Execute creates an article, first asking the AI to tighten the wording and
// score confidence. The improvement is advisory: any AI failure falls back to
// the submitted text with the default confidence.
func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*CreateArticleResult, error) {
	uc.logger.Infow("executing create article use case", "created_by", cmd.CreatedBy)

	problem := cmd.ProblemSummary
	solution := cmd.Solution
	confidence := kb.DefaultConfidence
	improved := false

	result, err := uc.aiClient.ImproveArticle(ctx, cmd.ProblemSummary, cmd.Solution)
	if err != nil {
		uc.logger.Warnw("article improvement failed, keeping submitted text", "error", err)
	} else {
		problem = result.Problem
		solution = result.Solution
		confidence = result.Confidence
		improved = problem != cmd.ProblemSummary || solution != cmd.Solution
		if !result.ShouldKeep {
			uc.logger.Warnw("AI flagged article as not reusable, creating anyway")
		}
	}

	article, err := kb.NewArticle(problem, solution, cmd.CategoryID, cmd.Tags, confidence, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.kbRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save KB article", "error", err)
		return nil, err
	}

	uc.logger.Infow("KB article created", "article_id", article.ID(), "confidence", article.Confidence())

	return &CreateArticleResult{
		ArticleID:      article.ID(),
		ProblemSummary: article.ProblemSummary(),
		Solution:       article.Solution(),
		Confidence:     article.Confidence(),
		Improved:       improved,
	}, nil
}
