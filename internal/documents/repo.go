package documents

import "context"

// Repo defines persistence operations for documents. Every operation is
// scoped to an owner; no call can observe another user's rows.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	GetByID(ctx context.Context, userID, documentID string) (Document, error)
	// DeleteByID removes the document if the caller owns it. Deleting an
	// absent or non-owned ID is a no-op, not an error.
	DeleteByID(ctx context.Context, userID, documentID string) error
}
