package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DatabaseService {
	db := NewDatabaseService(":memory:")
	require.NoError(t, db.Connect())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

func TestRequestLogService_InsertAndQueryLast(t *testing.T) {
	db := setupTestDB(t)
	service := &RequestLogService{DB: db.DB}

	ctx := context.Background()
	err := service.Insert(ctx, WebhookRequestRecord{
		Payload:    `{"exchange":"okx","symbol":"BTC-USDT","type":"spot"}`,
		StatusCode: 200,
		Response:   "ok",
	})
	require.NoError(t, err)

	err = service.Insert(ctx, WebhookRequestRecord{
		Payload:    `{"exchange":"okx","symbol":"BTC-USDT-SWAP","type":"perps"}`,
		StatusCode: 403,
		Response:   "bad token",
	})
	require.NoError(t, err)

	records, err := service.QueryLast(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 403, records[0].StatusCode)
	assert.Equal(t, "bad token", records[0].Response)
	assert.NotZero(t, records[0].GID)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestRequestLogService_QueryLastLimit(t *testing.T) {
	db := setupTestDB(t)
	service := &RequestLogService{DB: db.DB}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, service.Insert(ctx, WebhookRequestRecord{Payload: "{}"}))
	}

	records, err := service.QueryLast(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
