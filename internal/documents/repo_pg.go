package documents

import (
	"context"
	"database/sql"
	"errors"

	"snaptext-backend/internal/shared/telemetry"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, file_name, extracted_text, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.ExtractedText,
		doc.CreatedAt,
	)
	return err
}

// ListByUser returns all documents owned by a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT id, user_id, file_name, extracted_text, created_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.FileName,
			&doc.ExtractedText,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// GetByID fetches a document by ID for its owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT id, user_id, file_name, extracted_text, created_at
FROM documents
WHERE user_id = $1 AND id = $2
LIMIT 1`

	var doc Document
	err := r.DB.QueryRowContext(ctx, query, userID, documentID).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&doc.ExtractedText,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// DeleteByID removes a document through a single owner-scoped predicate, so a
// non-owned ID deletes nothing without revealing whether the row exists.
func (r *PGRepo) DeleteByID(ctx context.Context, userID, documentID string) error {
	const query = `
DELETE FROM documents
WHERE id = $1 AND user_id = $2`

	res, err := r.DB.ExecContext(ctx, query, documentID, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	telemetry.Info("documents.delete", map[string]any{
		"document_id":   documentID,
		"rows_affected": affected,
	})
	return nil
}

var _ Repo = (*PGRepo)(nil)
