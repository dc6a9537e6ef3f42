package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
)

func newTestRequest(t *testing.T) *Request {
	t.Helper()
	req, err := NewRequest("Alice", vo.ChannelEmail, "VPN keeps disconnecting", nil, vo.SeverityMedium, 1)
	require.NoError(t, err)
	return req
}

func TestNewRequest(t *testing.T) {
	t.Run("creates open request with timestamps", func(t *testing.T) {
		req := newTestRequest(t)

		assert.Equal(t, vo.StatusOpen, req.Status())
		assert.Equal(t, "Alice", req.RequesterName())
		assert.Nil(t, req.ClosedAt())
		assert.False(t, req.CreatedAt().IsZero())
		assert.Equal(t, req.CreatedAt(), req.UpdatedAt())
	})

	t.Run("rejects blank requester name", func(t *testing.T) {
		_, err := NewRequest("   ", vo.ChannelEmail, "desc", nil, vo.SeverityLow, 1)
		assert.Error(t, err)
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, err := NewRequest("Alice", vo.ChannelEmail, "", nil, vo.SeverityLow, 1)
		assert.Error(t, err)
	})

	t.Run("rejects invalid channel", func(t *testing.T) {
		_, err := NewRequest("Alice", vo.Channel("fax"), "desc", nil, vo.SeverityLow, 1)
		assert.Error(t, err)
	})

	t.Run("rejects invalid severity", func(t *testing.T) {
		_, err := NewRequest("Alice", vo.ChannelEmail, "desc", nil, vo.Severity("critical"), 1)
		assert.Error(t, err)
	})

	t.Run("rejects zero creator", func(t *testing.T) {
		_, err := NewRequest("Alice", vo.ChannelEmail, "desc", nil, vo.SeverityLow, 0)
		assert.Error(t, err)
	})
}

func TestRequestChangeStatus(t *testing.T) {
	t.Run("closing stamps closed_at", func(t *testing.T) {
		req := newTestRequest(t)

		err := req.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusClosed, req.Status())
		require.NotNil(t, req.ClosedAt())
	})

	t.Run("reopening clears closed_at", func(t *testing.T) {
		req := newTestRequest(t)
		require.NoError(t, req.ChangeStatus(vo.StatusClosed))
		require.NotNil(t, req.ClosedAt())

		err := req.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusOpen, req.Status())
		assert.Nil(t, req.ClosedAt())
	})

	t.Run("any transition is permitted", func(t *testing.T) {
		statuses := []vo.Status{vo.StatusOpen, vo.StatusInProgress, vo.StatusClosed}
		for _, from := range statuses {
			for _, to := range statuses {
				req := newTestRequest(t)
				require.NoError(t, req.ChangeStatus(from))
				assert.NoError(t, req.ChangeStatus(to), "from %s to %s", from, to)
				assert.Equal(t, to, req.Status())
			}
		}
	})

	t.Run("closed to in_progress clears closed_at", func(t *testing.T) {
		req := newTestRequest(t)
		require.NoError(t, req.ChangeStatus(vo.StatusClosed))

		require.NoError(t, req.ChangeStatus(vo.StatusInProgress))
		assert.Nil(t, req.ClosedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		req := newTestRequest(t)
		assert.Error(t, req.ChangeStatus(vo.Status("resolved")))
	})
}

func TestRequestApplyClassification(t *testing.T) {
	t.Run("applies all suggested fields", func(t *testing.T) {
		req := newTestRequest(t)

		catID := uint(4)
		sev := vo.SeverityHigh
		rec := "Restart the VPN client"
		require.NoError(t, req.ApplyClassification(&catID, &sev, &rec))

		require.NotNil(t, req.CategoryID())
		assert.Equal(t, uint(4), *req.CategoryID())
		assert.Equal(t, vo.SeverityHigh, req.Severity())
		require.NotNil(t, req.AIRecommendation())
		assert.Equal(t, "Restart the VPN client", *req.AIRecommendation())
	})

	t.Run("nil fields leave existing values untouched", func(t *testing.T) {
		req := newTestRequest(t)
		catID := uint(2)
		req.SetCategory(&catID)

		require.NoError(t, req.ApplyClassification(nil, nil, nil))

		require.NotNil(t, req.CategoryID())
		assert.Equal(t, uint(2), *req.CategoryID())
		assert.Equal(t, vo.SeverityMedium, req.Severity())
		assert.Nil(t, req.AIRecommendation())
	})

	t.Run("rejects invalid suggested severity", func(t *testing.T) {
		req := newTestRequest(t)
		sev := vo.Severity("urgent")
		assert.Error(t, req.ApplyClassification(nil, &sev, nil))
	})
}

func TestRequestSolution(t *testing.T) {
	req := newTestRequest(t)
	assert.False(t, req.HasSolution())

	req.SetSolution("Reinstalled the VPN client")
	assert.True(t, req.HasSolution())

	req.SetSolution("   ")
	assert.False(t, req.HasSolution())
}
