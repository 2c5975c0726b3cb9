package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	started_at     TEXT NOT NULL,
	order_file     TEXT NOT NULL DEFAULT '',
	company_file   TEXT NOT NULL DEFAULT '',
	inventory_file TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS processed_orders (
	run_id                TEXT NOT NULL REFERENCES runs(run_id),
	seq                   INTEGER NOT NULL,
	company_code          TEXT NOT NULL,
	company_name_original TEXT NOT NULL,
	product_name          TEXT NOT NULL,
	quantity              INTEGER NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE TABLE IF NOT EXISTS company_summaries (
	run_id                TEXT NOT NULL REFERENCES runs(run_id),
	company_code          TEXT NOT NULL,
	company_name_original TEXT NOT NULL,
	item_type_count       INTEGER NOT NULL,
	total_quantity        INTEGER NOT NULL,
	PRIMARY KEY (run_id, company_code)
);

CREATE TABLE IF NOT EXISTS unmapped_companies (
	run_id       TEXT NOT NULL REFERENCES runs(run_id),
	display_name TEXT NOT NULL,
	PRIMARY KEY (run_id, display_name)
);

CREATE TABLE IF NOT EXISTS inventory_records (
	run_id       TEXT NOT NULL REFERENCES runs(run_id),
	seq          INTEGER NOT NULL,
	product_code TEXT NOT NULL,
	product_name TEXT NOT NULL,
	token_a      TEXT NOT NULL,
	placeholder  TEXT NOT NULL,
	token_b      TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);
`

// Open 은 실행 결과용 SQLite 파일을 열고 스키마를 적용합니다.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect database %s: %w", path, err)
	}
	if err := ApplySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// ApplySchema 는 테이블이 없으면 만듭니다.
func ApplySchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
