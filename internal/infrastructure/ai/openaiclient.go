package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/opsdesk-inc/opsdesk/internal/domain/aisettings"
	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/shared/config"
	apperrors "github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const defaultRequestTimeout = 30 * time.Second

// providerBaseURLs maps a provider name to its chat completion endpoint. An
// empty value means the library default (api.openai.com). x.ai speaks the
// same dialect at its own host.
var providerBaseURLs = map[string]string{
	aisettings.ProviderOpenAI: "",
	aisettings.ProviderXAI:    "https://api.x.ai/v1",
}

// snapshot pairs a settings row with the client built from it so a reload
// swaps both atomically.
type snapshot struct {
	settings *aisettings.Settings
	client   *openai.Client
}

type OpenAIClient struct {
	repo    aisettings.Repository
	timeout time.Duration
	logger  logger.Interface
	current atomic.Pointer[snapshot]
}

func NewOpenAIClient(repo aisettings.Repository, cfg config.AIConfig, log logger.Interface) *OpenAIClient {
	timeout := defaultRequestTimeout
	if cfg.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}
	return &OpenAIClient{
		repo:    repo,
		timeout: timeout,
		logger:  log.Named("ai"),
	}
}

func (c *OpenAIClient) Reload(ctx context.Context) error {
	settings, err := c.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load AI settings: %w", err)
	}

	snap := &snapshot{settings: settings}
	if settings.HasAPIKey() {
		clientCfg := openai.DefaultConfig(settings.APIKey())
		if baseURL := providerBaseURLs[settings.Provider()]; baseURL != "" {
			clientCfg.BaseURL = baseURL
		}
		snap.client = openai.NewClientWithConfig(clientCfg)
	}

	c.current.Store(snap)
	c.logger.Infow("AI settings reloaded",
		"provider", settings.Provider(),
		"model", settings.ModelName(),
		"has_api_key", settings.HasAPIKey(),
	)
	return nil
}

func (c *OpenAIClient) snapshot(ctx context.Context) (*snapshot, error) {
	if snap := c.current.Load(); snap != nil {
		return snap, nil
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c.current.Load(), nil
}

func (c *OpenAIClient) Classify(ctx context.Context, description string, categories []string) (Classification, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return Classification{}, apperrors.NewAIUnavailableError("AI settings unavailable", err.Error())
	}
	if !snap.settings.ClassifyEnabled() || !snap.settings.HasAPIKey() {
		return Classification{}, nil
	}

	categoryList, _ := json.Marshal(categories)
	prompt := fmt.Sprintf(`Analyze this support request and categorize it. Return a JSON object with:
- category: Choose from %s
- severity: "low", "medium", or "high"
- recommendation: A brief internal recommendation for the support team

Request: %q

Respond with only valid JSON, no other text.`, categoryList, description)

	content, err := c.chat(ctx, snap, prompt, 300)
	if err != nil {
		return Classification{}, err
	}

	var parsed struct {
		Category       *string `json:"category"`
		Severity       *string `json:"severity"`
		Recommendation *string `json:"recommendation"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil {
		c.logger.Warnw("classification response was not valid JSON", "error", err)
		return Classification{}, apperrors.NewAIUnavailableError("AI returned a malformed classification")
	}

	result := Classification{
		CategoryName:   emptyToNil(parsed.Category),
		Recommendation: emptyToNil(parsed.Recommendation),
	}
	if sev := emptyToNil(parsed.Severity); sev != nil {
		switch *sev {
		case "low", "medium", "high":
			result.Severity = sev
		}
	}
	return result, nil
}

func (c *OpenAIClient) DraftReply(ctx context.Context, rc ReplyContext) (string, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return "", apperrors.NewAIUnavailableError("AI settings unavailable", err.Error())
	}
	if !snap.settings.DraftReplyEnabled() {
		return "", apperrors.NewAIMisconfiguredError("AI replies are disabled")
	}
	if !snap.settings.HasAPIKey() {
		return "", apperrors.NewAIMisconfiguredError("AI API key is not configured")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `You are an IT support specialist. Generate a professional response for this support request.

Response guidelines:
- 4-8 lines maximum
- User-facing (suitable for copy-paste into a chat or email)
- Include clarifying questions if information is missing
- Suggest escalation if needed
- Professional and helpful tone
- No mention of AI

Request details:
- Requester: %s
- Channel: %s
- Issue: %s
`, rc.RequesterName, strings.ReplaceAll(rc.Channel, "_", " "), rc.Description)
	if rc.CategoryName != nil {
		fmt.Fprintf(&sb, "- Category: %s\n", *rc.CategoryName)
	}
	if rc.Recommendation != nil {
		fmt.Fprintf(&sb, "- Internal analysis: %s\n", *rc.Recommendation)
	}
	sb.WriteString("\nGenerate only the response text, no quotes or additional formatting.")

	reply, err := c.chat(ctx, snap, sb.String(), 500)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, date string, entries []SummaryEntry) (string, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return "", apperrors.NewAIUnavailableError("AI settings unavailable", err.Error())
	}
	if !snap.settings.SummarizeEnabled() {
		return "", apperrors.NewAIMisconfiguredError("AI summaries are disabled")
	}
	if !snap.settings.HasAPIKey() {
		return "", apperrors.NewAIMisconfiguredError("AI API key is not configured")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		category := e.CategoryName
		if category == "" {
			category = "Uncategorized"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", e.RequesterName, e.Description, category))
	}

	prompt := fmt.Sprintf(`Generate a daily support summary for %s based on these %d requests. Include:
- Total number of requests
- Major issue categories and counts
- Any bottlenecks or repeated problems
- Key insights for management

Requests:
%s

Keep the summary concise and actionable.`, date, len(entries), strings.Join(lines, "\n"))

	summary, err := c.chat(ctx, snap, prompt, 800)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

func (c *OpenAIClient) ImproveArticle(ctx context.Context, problem, solution string) (ImprovedArticle, error) {
	fallback := ImprovedArticle{
		Problem:    problem,
		Solution:   solution,
		Confidence: kb.DefaultConfidence,
		ShouldKeep: true,
	}

	snap, err := c.snapshot(ctx)
	if err != nil {
		return fallback, apperrors.NewAIUnavailableError("AI settings unavailable", err.Error())
	}
	if !snap.settings.ImproveArticleEnabled() || !snap.settings.HasAPIKey() {
		return fallback, nil
	}

	prompt := fmt.Sprintf(`Review this support solution and improve it for the knowledge base. Return a JSON object with:
- improved_problem: A clear, concise problem summary
- improved_solution: An improved, detailed solution
- should_be_kb: boolean, whether this should be added to KB
- confidence: 1-5 rating of how reusable this solution is

Original problem: %q
Original solution: %q

Respond with only valid JSON.`, problem, solution)

	content, err := c.chat(ctx, snap, prompt, 600)
	if err != nil {
		return fallback, err
	}

	var parsed struct {
		ImprovedProblem  string `json:"improved_problem"`
		ImprovedSolution string `json:"improved_solution"`
		ShouldBeKB       *bool  `json:"should_be_kb"`
		Confidence       int    `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &parsed); err != nil {
		c.logger.Warnw("article improvement response was not valid JSON", "error", err)
		return fallback, apperrors.NewAIUnavailableError("AI returned a malformed article review")
	}

	improved := fallback
	if strings.TrimSpace(parsed.ImprovedProblem) != "" {
		improved.Problem = parsed.ImprovedProblem
	}
	if strings.TrimSpace(parsed.ImprovedSolution) != "" {
		improved.Solution = parsed.ImprovedSolution
	}
	if parsed.ShouldBeKB != nil {
		improved.ShouldKeep = *parsed.ShouldBeKB
	}
	improved.Confidence = clampConfidence(parsed.Confidence)
	return improved, nil
}

func (c *OpenAIClient) chat(ctx context.Context, snap *snapshot, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := snap.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: snap.settings.ModelName(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(snap.settings.Temperature()),
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", mapProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewAIUnavailableError("AI provider returned no response choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func mapProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperrors.NewAIMisconfiguredError("AI provider rejected the configured credentials", apiErr.Message)
		case http.StatusTooManyRequests:
			return apperrors.NewAIRateLimitedError("AI provider rate limit exceeded", apiErr.Message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewAIUnavailableError("AI request timed out")
	}
	return apperrors.NewAIUnavailableError("AI provider request failed", err.Error())
}

// stripCodeFences unwraps ```json ... ``` blocks some models insist on
// returning despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clampConfidence(confidence int) int {
	if confidence < kb.MinConfidence {
		if confidence == 0 {
			return kb.DefaultConfidence
		}
		return kb.MinConfidence
	}
	if confidence > kb.MaxConfidence {
		return kb.MaxConfidence
	}
	return confidence
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
