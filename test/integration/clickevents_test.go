//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"link-resolver/services/analytics-consumer/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickEventsModelIntegration(t *testing.T) {
	skipIfShort(t)

	conn, cleanup := setupPostgres(t)
	defer cleanup()

	eventModel := model.NewClickEventsModel(conn)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV7())
	doc := &model.ClickEvents{
		Id:            id.String(),
		ShortCode:     "abc123",
		OriginalUrl:   "https://example.com/page",
		ClickedAt:     time.Now(),
		UserAgent:     "Mozilla/5.0",
		IpAddress:     "1.2.3.4",
		Referer:       "https://google.com/search",
		CountryCode:   "US",
		DeviceType:    "Desktop",
		TrafficSource: "Search",
	}

	_, err := eventModel.Insert(ctx, doc)
	require.NoError(t, err)

	stored, err := eventModel.FindOne(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, "abc123", stored.ShortCode)
	assert.Equal(t, "https://example.com/page", stored.OriginalUrl)
	assert.Equal(t, "US", stored.CountryCode)
	assert.False(t, stored.ReceivedAt.IsZero())

	// Redelivering the same message must converge to one document per id
	_, err = eventModel.Insert(ctx, doc)
	require.NoError(t, err, "insert must be idempotent by id")

	count, err := eventModel.CountByShortCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A distinct event for the same short code is a second document
	doc2 := *doc
	doc2.Id = uuid.Must(uuid.NewV7()).String()
	_, err = eventModel.Insert(ctx, &doc2)
	require.NoError(t, err)

	count, err = eventModel.CountByShortCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = eventModel.CountByShortCode(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
