package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/closetarchive/archivist/internal/model"
)

// Run is one recorded batch classification run.
type Run struct {
	StartedAt     time.Time
	FinishedAt    *time.Time
	ID            string
	TotalProducts int
	Classified    int
	Failed        int
}

// StartRun records the beginning of a batch run and returns its id.
func (s *SQLiteStorage) StartRun(ctx context.Context, totalProducts int) (string, error) {
	id := uuid.New().String()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO classification_runs (id, started_at, total_products) VALUES (?, ?, ?)`,
		id, time.Now().UTC(), totalProducts)
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}

	return id, nil
}

// FinishRun closes out a run with its final counts.
func (s *SQLiteStorage) FinishRun(ctx context.Context, runID string, classified, failed int) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE classification_runs SET finished_at = ?, classified = ?, failed = ? WHERE id = ?`,
		time.Now().UTC(), classified, failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check run update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("run %s not found", runID)
	}

	return nil
}

// GetRun loads one run by id.
func (s *SQLiteStorage) GetRun(ctx context.Context, runID string) (Run, error) {
	var run Run
	var finished sql.NullTime

	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, total_products, classified, failed
		 FROM classification_runs WHERE id = ?`, runID).
		Scan(&run.ID, &run.StartedAt, &finished, &run.TotalProducts, &run.Classified, &run.Failed)
	if err != nil {
		return Run{}, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	if finished.Valid {
		run.FinishedAt = &finished.Time
	}

	return run, nil
}

// SaveClassification upserts one product's result under a run. Reclassifying
// a product replaces its previous row; history lives in the runs table.
func (s *SQLiteStorage) SaveClassification(ctx context.Context, runID string, product model.Product, c model.Classification) error {
	fastPath := 0
	if c.FastPath {
		fastPath = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO classifications (product_id, run_id, title, category, confidence, reason, fast_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(product_id) DO UPDATE SET
			run_id = excluded.run_id,
			title = excluded.title,
			category = excluded.category,
			confidence = excluded.confidence,
			reason = excluded.reason,
			fast_path = excluded.fast_path,
			created_at = excluded.created_at`,
		product.ID, runID, product.Name, string(c.Category), c.Confidence, c.Reason, fastPath, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save classification for %s: %w", product.ID, err)
	}

	return nil
}

// StoredClassification is one persisted result row.
type StoredClassification struct {
	CreatedAt  time.Time
	ProductID  string
	RunID      string
	Title      string
	Category   model.Category
	Reason     string
	Confidence int
	FastPath   bool
}

// GetClassification loads the stored result for one product.
func (s *SQLiteStorage) GetClassification(ctx context.Context, productID string) (StoredClassification, error) {
	var row StoredClassification
	var category string
	var fastPath int

	err := s.db.QueryRowContext(ctx,
		`SELECT product_id, run_id, title, category, confidence, reason, fast_path, created_at
		 FROM classifications WHERE product_id = ?`, productID).
		Scan(&row.ProductID, &row.RunID, &row.Title, &category, &row.Confidence, &row.Reason, &fastPath, &row.CreatedAt)
	if err != nil {
		return StoredClassification{}, fmt.Errorf("failed to load classification for %s: %w", productID, err)
	}

	row.Category = model.Category(category)
	row.FastPath = fastPath == 1
	return row, nil
}

// ListByCategory returns every stored result in the given category, newest
// first.
func (s *SQLiteStorage) ListByCategory(ctx context.Context, category model.Category) ([]StoredClassification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, run_id, title, category, confidence, reason, fast_path, created_at
		 FROM classifications WHERE category = ? ORDER BY created_at DESC`, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []StoredClassification
	for rows.Next() {
		var row StoredClassification
		var cat string
		var fastPath int
		if err := rows.Scan(&row.ProductID, &row.RunID, &row.Title, &cat, &row.Confidence, &row.Reason, &fastPath, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan classification: %w", err)
		}
		row.Category = model.Category(cat)
		row.FastPath = fastPath == 1
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate classifications: %w", err)
	}

	return out, nil
}
