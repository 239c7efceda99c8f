package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"Scanstock-Backend/domain"
)

type (
	// Record is the local representation of one scan. It has no server id;
	// the barcode value is its identity.
	Record struct {
		Value          string `json:"value"`
		Format         string `json:"format,omitempty"`
		Title          string `json:"title,omitempty"`
		Brand          string `json:"brand,omitempty"`
		Description    string `json:"description,omitempty"`
		ImageURL       string `json:"image_url,omitempty"`
		ScannedAt      int64  `json:"scanned_at"`
		ExpiresAt      *int64 `json:"expires_at,omitempty"`
		Notes          string `json:"notes,omitempty"`
		Source         string `json:"source"`
		HasProductInfo bool   `json:"has_product_info"`
	}

	Settings struct {
		AddToHistory     bool     `json:"add_to_history"`
		ContinueScanning bool     `json:"continue_scanning"`
		Formats          []string `json:"formats,omitempty"`
	}

	Store interface {
		Append(ctx context.Context, rec Record) error
		List(ctx context.Context) ([]Record, error)
		Remove(ctx context.Context, value string) error
		Configure(ctx context.Context, settings Settings) error
		GetSettings(ctx context.Context) (Settings, error)
		Close() error
	}

	store struct {
		db *sql.DB
	}
)

func DefaultSettings() Settings {
	return Settings{AddToHistory: true, ContinueScanning: false}
}

func New(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS scans (
			value TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			scanned_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	return &store{db: db}, nil
}

func (s *store) Append(ctx context.Context, rec Record) error {
	if rec.Value == "" {
		return domain.ErrEmptyBarcodeValue
	}

	// scanned_at is set once at creation; re-scanning an existing barcode
	// keeps the original timestamp and only refreshes the mutable fields.
	var existing int64
	err := s.db.QueryRowContext(ctx,
		`SELECT scanned_at FROM scans WHERE value = ?`, rec.Value).Scan(&existing)
	switch {
	case err == nil:
		rec.ScannedAt = existing
	case err != sql.ErrNoRows:
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scans (value, data, scanned_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(value)
		 DO UPDATE SET data = excluded.data`,
		rec.Value, string(data), rec.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

func (s *store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM scans ORDER BY scanned_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
		}

		var rec Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			// A corrupt row degrades to a skipped record, not a failed read.
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	return records, nil
}

func (s *store) Remove(ctx context.Context, value string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE value = ?`, value)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

func (s *store) Configure(ctx context.Context, settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (id, data) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

func (s *store) GetSettings(ctx context.Context) (Settings, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	var settings Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return DefaultSettings(), nil
	}
	return settings, nil
}

func (s *store) Close() error {
	return s.db.Close()
}
