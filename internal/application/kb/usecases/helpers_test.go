package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk-inc/opsdesk/internal/domain/kb"
	"github.com/opsdesk-inc/opsdesk/internal/domain/request"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/request/valueobjects"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func storedArticle(t *testing.T, id uint) *kb.Article {
	t.Helper()
	article, err := kb.ReconstructArticle(
		id,
		"VPN keeps disconnecting",
		"Reinstall the VPN client and reboot",
		nil,
		[]string{"vpn", "network"},
		kb.DefaultConfidence,
		1,
		testTime(), testTime(),
	)
	require.NoError(t, err)
	return article
}

func resolvedRequest(t *testing.T, id uint, solution *string) *request.Request {
	t.Helper()
	req, err := request.ReconstructRequest(
		id,
		"Alice",
		vo.ChannelEmail,
		"VPN keeps disconnecting",
		nil,
		vo.SeverityMedium,
		vo.StatusOpen,
		nil, nil, solution,
		false,
		1,
		testTime(), testTime(),
		nil,
	)
	require.NoError(t, err)
	return req
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
