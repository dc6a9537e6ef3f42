package valueobjects

import "fmt"

// Status is the lifecycle state of a support request.
//
// Any status may transition to any other: the original workflow imposes no
// transition table and reopening a closed request is allowed. The only
// state-coupled behavior is closed_at stamping, which the entity owns.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusClosed}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}
