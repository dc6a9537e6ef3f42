package kb

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinConfidence = 1
	MaxConfidence = 5

	// DefaultConfidence is used when no AI improvement ran.
	DefaultConfidence = 3
)

// Article is a reusable problem/solution pair surfaced by search, optionally
// derived from a resolved support request. Articles hold copies of request
// data, never references, so requests can be deleted freely afterwards.
type Article struct {
	id             uint
	problemSummary string
	solution       string
	categoryID     *uint
	tags           []string
	confidence     int
	createdBy      uint
	createdAt      time.Time
	updatedAt      time.Time
}

func NewArticle(
	problemSummary string,
	solution string,
	categoryID *uint,
	tags []string,
	confidence int,
	createdBy uint,
) (*Article, error) {
	if strings.TrimSpace(problemSummary) == "" {
		return nil, fmt.Errorf("problem summary is required")
	}
	if strings.TrimSpace(solution) == "" {
		return nil, fmt.Errorf("solution is required")
	}
	if confidence < MinConfidence || confidence > MaxConfidence {
		return nil, fmt.Errorf("confidence must be between %d and %d", MinConfidence, MaxConfidence)
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()

	return &Article{
		problemSummary: problemSummary,
		solution:       solution,
		categoryID:     categoryID,
		tags:           NormalizeTags(tags),
		confidence:     confidence,
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructArticle(
	id uint,
	problemSummary string,
	solution string,
	categoryID *uint,
	tags []string,
	confidence int,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if tags == nil {
		tags = []string{}
	}

	return &Article{
		id:             id,
		problemSummary: problemSummary,
		solution:       solution,
		categoryID:     categoryID,
		tags:           tags,
		confidence:     confidence,
		createdBy:      createdBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (a *Article) ID() uint               { return a.id }
func (a *Article) ProblemSummary() string { return a.problemSummary }
func (a *Article) Solution() string       { return a.solution }
func (a *Article) CategoryID() *uint      { return a.categoryID }
func (a *Article) Confidence() int        { return a.confidence }
func (a *Article) CreatedBy() uint        { return a.createdBy }
func (a *Article) CreatedAt() time.Time   { return a.createdAt }
func (a *Article) UpdatedAt() time.Time   { return a.updatedAt }

func (a *Article) Tags() []string {
	tagsCopy := make([]string, len(a.tags))
	copy(tagsCopy, a.tags)
	return tagsCopy
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Article) SetProblemSummary(problemSummary string) error {
	if strings.TrimSpace(problemSummary) == "" {
		return fmt.Errorf("problem summary cannot be empty")
	}
	a.problemSummary = problemSummary
	a.touch()
	return nil
}

func (a *Article) SetSolution(solution string) error {
	if strings.TrimSpace(solution) == "" {
		return fmt.Errorf("solution cannot be empty")
	}
	a.solution = solution
	a.touch()
	return nil
}

func (a *Article) SetCategory(categoryID *uint) {
	a.categoryID = categoryID
	a.touch()
}

func (a *Article) SetTags(tags []string) {
	a.tags = NormalizeTags(tags)
	a.touch()
}

func (a *Article) SetConfidence(confidence int) error {
	if confidence < MinConfidence || confidence > MaxConfidence {
		return fmt.Errorf("confidence must be between %d and %d", MinConfidence, MaxConfidence)
	}
	a.confidence = confidence
	a.touch()
	return nil
}

func (a *Article) touch() {
	a.updatedAt = time.Now().UTC()
}

// NormalizeTags trims whitespace and drops empty entries while preserving
// order. Duplicates are kept: display order is meaningful, dedup is not part
// of the contract.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// SplitTags splits a comma-separated tag string into normalized tags.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(raw, ","))
}
