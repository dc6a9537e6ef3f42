package aisettings

import (
	"fmt"
	"strings"
	"time"
)

// Supported providers. The provider name selects the API endpoint; all of
// them speak the OpenAI chat completion dialect.
const (
	ProviderOpenAI = "openai"
	ProviderXAI    = "xai"
)

const (
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

// Settings is the singleton AI configuration row. The API key is write-only
// at the HTTP surface; only its presence is ever reported back.
type Settings struct {
	id                    uint
	provider              string
	apiKey                string
	modelName             string
	temperature           float64
	maxTokens             int
	classifyEnabled       bool
	draftReplyEnabled     bool
	summarizeEnabled      bool
	improveArticleEnabled bool
	updatedAt             time.Time
}

// DefaultSettings returns the row seeded on first boot: everything enabled
// but no key, so every feature degrades gracefully until an admin fills it in.
func DefaultSettings() *Settings {
	return &Settings{
		provider:              ProviderOpenAI,
		modelName:             "gpt-4o-mini",
		temperature:           0.3,
		maxTokens:             1024,
		classifyEnabled:       true,
		draftReplyEnabled:     true,
		summarizeEnabled:      true,
		improveArticleEnabled: true,
		updatedAt:             time.Now().UTC(),
	}
}

func ReconstructSettings(
	id uint,
	provider, apiKey, modelName string,
	temperature float64,
	maxTokens int,
	classifyEnabled, draftReplyEnabled, summarizeEnabled, improveArticleEnabled bool,
	updatedAt time.Time,
) *Settings {
	return &Settings{
		id:                    id,
		provider:              provider,
		apiKey:                apiKey,
		modelName:             modelName,
		temperature:           temperature,
		maxTokens:             maxTokens,
		classifyEnabled:       classifyEnabled,
		draftReplyEnabled:     draftReplyEnabled,
		summarizeEnabled:      summarizeEnabled,
		improveArticleEnabled: improveArticleEnabled,
		updatedAt:             updatedAt,
	}
}

func (s *Settings) ID() uint                    { return s.id }
func (s *Settings) Provider() string            { return s.provider }
func (s *Settings) APIKey() string              { return s.apiKey }
func (s *Settings) ModelName() string           { return s.modelName }
func (s *Settings) Temperature() float64        { return s.temperature }
func (s *Settings) MaxTokens() int              { return s.maxTokens }
func (s *Settings) ClassifyEnabled() bool       { return s.classifyEnabled }
func (s *Settings) DraftReplyEnabled() bool     { return s.draftReplyEnabled }
func (s *Settings) SummarizeEnabled() bool      { return s.summarizeEnabled }
func (s *Settings) ImproveArticleEnabled() bool { return s.improveArticleEnabled }
func (s *Settings) UpdatedAt() time.Time        { return s.updatedAt }

func (s *Settings) HasAPIKey() bool { return s.apiKey != "" }

func (s *Settings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Settings) SetProvider(provider string) error {
	switch provider {
	case ProviderOpenAI, ProviderXAI:
		s.provider = provider
		s.touch()
		return nil
	default:
		return fmt.Errorf("unsupported provider: %s", provider)
	}
}

// SetAPIKey replaces the stored key. An empty string clears it, which turns
// every AI feature into a graceful no-op.
func (s *Settings) SetAPIKey(apiKey string) {
	s.apiKey = apiKey
	s.touch()
}

func (s *Settings) SetModelName(modelName string) error {
	if strings.TrimSpace(modelName) == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	s.modelName = modelName
	s.touch()
	return nil
}

func (s *Settings) SetTemperature(temperature float64) error {
	if temperature < MinTemperature || temperature > MaxTemperature {
		return fmt.Errorf("temperature must be between %v and %v", MinTemperature, MaxTemperature)
	}
	s.temperature = temperature
	s.touch()
	return nil
}

func (s *Settings) SetMaxTokens(maxTokens int) error {
	if maxTokens < 1 {
		return fmt.Errorf("max tokens must be at least 1")
	}
	s.maxTokens = maxTokens
	s.touch()
	return nil
}

func (s *Settings) SetClassifyEnabled(enabled bool) {
	s.classifyEnabled = enabled
	s.touch()
}

func (s *Settings) SetDraftReplyEnabled(enabled bool) {
	s.draftReplyEnabled = enabled
	s.touch()
}

func (s *Settings) SetSummarizeEnabled(enabled bool) {
	s.summarizeEnabled = enabled
	s.touch()
}

func (s *Settings) SetImproveArticleEnabled(enabled bool) {
	s.improveArticleEnabled = enabled
	s.touch()
}

func (s *Settings) touch() {
	s.updatedAt = time.Now().UTC()
}
