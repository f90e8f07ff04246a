package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mealcoach/internal/modules/session/domain"
	sessionout "mealcoach/internal/modules/session/port/out"
	apperrors "mealcoach/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// SQLiteStore keeps session state in a private in-memory SQLite database.
// A single connection is held open so the database lives exactly as long as
// the store.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context) (sessionout.Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	ddl := []string{`
CREATE TABLE IF NOT EXISTS meal_records (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  recorded_at TEXT NOT NULL,
  meal_type TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK (calories >= 0),
  analysis TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS session_image (
  slot INTEGER PRIMARY KEY CHECK (slot = 1),
  id TEXT NOT NULL,
  name TEXT NOT NULL,
  source TEXT NOT NULL,
  mime_type TEXT NOT NULL,
  data BLOB NOT NULL,
  selected_at TEXT NOT NULL
);`,
	}
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create session schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) SaveImage(ctx context.Context, image domain.SelectedImage) error {
	const stmt = `
INSERT INTO session_image (slot, id, name, source, mime_type, data, selected_at)
VALUES (1, ?, ?, ?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
  id=excluded.id,
  name=excluded.name,
  source=excluded.source,
  mime_type=excluded.mime_type,
  data=excluded.data,
  selected_at=excluded.selected_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		image.ID,
		image.Name,
		image.Source,
		image.MIMEType,
		image.Data,
		image.SelectedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save current image: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadImage(ctx context.Context) (domain.SelectedImage, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, source, mime_type, data, selected_at FROM session_image WHERE slot = 1`)
	var image domain.SelectedImage
	var selectedAt string
	if err := row.Scan(&image.ID, &image.Name, &image.Source, &image.MIMEType, &image.Data, &selectedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SelectedImage{}, apperrors.ErrNoImageSelected
		}
		return domain.SelectedImage{}, fmt.Errorf("load current image: %w", err)
	}
	parsed, err := time.Parse(timeLayout, selectedAt)
	if err != nil {
		return domain.SelectedImage{}, fmt.Errorf("parse image time: %w", err)
	}
	image.SelectedAt = parsed
	return image, nil
}

func (s *SQLiteStore) AppendRecord(ctx context.Context, record domain.MealRecord) error {
	const stmt = `
INSERT INTO meal_records (id, recorded_at, meal_type, calories, analysis)
VALUES (?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.ID,
		record.RecordedAt.Format(timeLayout),
		record.MealType,
		record.Calories,
		record.Analysis,
	)
	if err != nil {
		return fmt.Errorf("append meal record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) TotalCalories(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(calories), 0) FROM meal_records`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum calories: %w", err)
	}
	return total, nil
}

func (s *SQLiteStore) Records(ctx context.Context, limit int) ([]domain.MealRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, recorded_at, meal_type, calories, analysis
FROM meal_records
ORDER BY seq DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query meal records: %w", err)
	}
	defer rows.Close()

	var records []domain.MealRecord
	for rows.Next() {
		var record domain.MealRecord
		var recordedAt string
		if err := rows.Scan(&record.ID, &recordedAt, &record.MealType, &record.Calories, &record.Analysis); err != nil {
			return nil, fmt.Errorf("scan meal record: %w", err)
		}
		parsed, err := time.Parse(timeLayout, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse meal time: %w", err)
		}
		record.RecordedAt = parsed
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal records: %w", err)
	}
	return records, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
