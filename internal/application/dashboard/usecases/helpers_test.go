package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func storedRequest(t *testing.T, id uint, categoryID *uint) *request.Request {
	t.Helper()
	req, err := request.ReconstructRequest(
		id,
		"Alice",
		vo.ChannelEmail,
		"VPN keeps disconnecting",
		categoryID,
		vo.SeverityMedium,
		vo.StatusOpen,
		nil, nil, nil,
		false,
		1,
		testTime(), testTime(),
		nil,
	)
	require.NoError(t, err)
	return req
}
