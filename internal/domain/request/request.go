package request

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
)

// Request is a single reported support issue tracked through
// open/in_progress/closed.
type Request struct {
	id               uint
	requesterName    string
	channel          vo.Channel
	description      string
	categoryID       *uint
	severity         vo.Severity
	status           vo.Status
	aiRecommendation *string
	aiReply          *string
	solution         *string
	isKBArticle      bool
	createdBy        uint
	createdAt        time.Time
	updatedAt        time.Time
	closedAt         *time.Time
}

func NewRequest(
	requesterName string,
	channel vo.Channel,
	description string,
	categoryID *uint,
	severity vo.Severity,
	createdBy uint,
) (*Request, error) {
	if strings.TrimSpace(requesterName) == "" {
		return nil, fmt.Errorf("requester name is required")
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid channel")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()

	return &Request{
		requesterName: requesterName,
		channel:       channel,
		description:   description,
		categoryID:    categoryID,
		severity:      severity,
		status:        vo.StatusOpen,
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequest(
	id uint,
	requesterName string,
	channel vo.Channel,
	description string,
	categoryID *uint,
	severity vo.Severity,
	status vo.Status,
	aiRecommendation *string,
	aiReply *string,
	solution *string,
	isKBArticle bool,
	createdBy uint,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid channel")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Request{
		id:               id,
		requesterName:    requesterName,
		channel:          channel,
		description:      description,
		categoryID:       categoryID,
		severity:         severity,
		status:           status,
		aiRecommendation: aiRecommendation,
		aiReply:          aiReply,
		solution:         solution,
		isKBArticle:      isKBArticle,
		createdBy:        createdBy,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		closedAt:         closedAt,
	}, nil
}

func (r *Request) ID() uint                   { return r.id }
func (r *Request) RequesterName() string      { return r.requesterName }
func (r *Request) Channel() vo.Channel        { return r.channel }
func (r *Request) Description() string        { return r.description }
func (r *Request) CategoryID() *uint          { return r.categoryID }
func (r *Request) Severity() vo.Severity      { return r.severity }
func (r *Request) Status() vo.Status          { return r.status }
func (r *Request) AIRecommendation() *string  { return r.aiRecommendation }
func (r *Request) AIReply() *string           { return r.aiReply }
func (r *Request) Solution() *string          { return r.solution }
func (r *Request) IsKBArticle() bool          { return r.isKBArticle }
func (r *Request) CreatedBy() uint            { return r.createdBy }
func (r *Request) CreatedAt() time.Time       { return r.createdAt }
func (r *Request) UpdatedAt() time.Time       { return r.updatedAt }
func (r *Request) ClosedAt() *time.Time       { return r.closedAt }

// HasSolution reports whether a non-blank solution has been recorded.
func (r *Request) HasSolution() bool {
	return r.solution != nil && strings.TrimSpace(*r.solution) != ""
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// ChangeStatus moves the request to a new lifecycle state. Entering closed
// stamps closedAt; leaving closed clears it, so a reopened request never
// carries a stale closure timestamp.
func (r *Request) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if r.status == newStatus {
		return nil
	}

	wasClosed := r.status.IsClosed()
	r.status = newStatus
	now := time.Now().UTC()
	r.updatedAt = now

	if newStatus.IsClosed() {
		r.closedAt = &now
	} else if wasClosed {
		r.closedAt = nil
	}

	return nil
}

func (r *Request) SetRequesterName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("requester name cannot be empty")
	}
	r.requesterName = name
	r.touch()
	return nil
}

func (r *Request) SetChannel(channel vo.Channel) error {
	if !channel.IsValid() {
		return fmt.Errorf("invalid channel: %s", channel)
	}
	r.channel = channel
	r.touch()
	return nil
}

func (r *Request) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	r.description = description
	r.touch()
	return nil
}

func (r *Request) SetSeverity(severity vo.Severity) error {
	if !severity.IsValid() {
		return fmt.Errorf("invalid severity: %s", severity)
	}
	r.severity = severity
	r.touch()
	return nil
}

func (r *Request) SetCategory(categoryID *uint) {
	r.categoryID = categoryID
	r.touch()
}

func (r *Request) SetSolution(solution string) {
	r.solution = &solution
	r.touch()
}

func (r *Request) MarkKBArticle(promoted bool) {
	r.isKBArticle = promoted
	r.touch()
}

// ApplyClassification overwrites only the fields the classifier returned.
// Fields passed as nil are left untouched.
func (r *Request) ApplyClassification(categoryID *uint, severity *vo.Severity, recommendation *string) error {
	if severity != nil {
		if !severity.IsValid() {
			return fmt.Errorf("invalid severity: %s", *severity)
		}
		r.severity = *severity
	}
	if categoryID != nil {
		r.categoryID = categoryID
	}
	if recommendation != nil {
		r.aiRecommendation = recommendation
	}
	r.touch()
	return nil
}

// AttachRecommendation records the classifier's advisory note for the team.
func (r *Request) AttachRecommendation(recommendation string) {
	r.aiRecommendation = &recommendation
}

// SetAIReply caches the last generated user-facing reply, overwriting any
// previous generation.
func (r *Request) SetAIReply(reply string) {
	r.aiReply = &reply
	r.touch()
}

func (r *Request) touch() {
	r.updatedAt = time.Now().UTC()
}
