package service

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// WebhookRequestRecord is one (request document, response outcome) pair.
type WebhookRequestRecord struct {
	GID        int64     `db:"gid"`
	Payload    string    `db:"payload"`
	StatusCode int       `db:"status_code"`
	Response   string    `db:"response"`
	CreatedAt  time.Time `db:"created_at"`
}

// RequestLogService is a write-mostly sink for dispatched webhook requests.
// The core decision logic never reads it; QueryLast exists for the operator.
type RequestLogService struct {
	DB *sqlx.DB
}

func (s *RequestLogService) Insert(ctx context.Context, record WebhookRequestRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := s.DB.NamedExecContext(ctx, `
		INSERT INTO webhook_requests (payload, status_code, response, created_at)
		VALUES (:payload, :status_code, :response, :created_at)`, record)
	return err
}

func (s *RequestLogService) QueryLast(ctx context.Context, limit int) ([]WebhookRequestRecord, error) {
	rows, err := s.DB.NamedQueryContext(ctx, `SELECT * FROM webhook_requests ORDER BY created_at DESC LIMIT :limit`, map[string]interface{}{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	return s.scanRows(rows)
}

func (s *RequestLogService) scanRows(rows *sqlx.Rows) (records []WebhookRequestRecord, err error) {
	for rows.Next() {
		var record WebhookRequestRecord
		if err := rows.StructScan(&record); err != nil {
			return records, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}
