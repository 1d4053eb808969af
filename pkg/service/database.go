package service

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DatabaseService owns the sqlite connection backing the request log.
// The schema is a single table, bootstrapped on connect.
type DatabaseService struct {
	DSN string
	DB  *sqlx.DB
}

func NewDatabaseService(dsn string) *DatabaseService {
	return &DatabaseService{DSN: dsn}
}

func (s *DatabaseService) Connect() error {
	var err error
	s.DB, err = sqlx.Connect("sqlite3", s.DSN)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(webhookRequestsSchema)
	return err
}

func (s *DatabaseService) Close() error {
	return s.DB.Close()
}

const webhookRequestsSchema = `
CREATE TABLE IF NOT EXISTS webhook_requests (
	gid INTEGER PRIMARY KEY AUTOINCREMENT,
	payload TEXT NOT NULL,
	status_code INTEGER NOT NULL DEFAULT 0,
	response TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
