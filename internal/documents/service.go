package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"snaptext-backend/internal/shared/metrics"
)

// Service contains business logic for documents.
type Service struct {
	Repo Repo
}

// Create validates and persists a new document for the given owner. Both the
// file name and the extracted text are required; nothing is written otherwise.
func (s *Service) Create(ctx context.Context, userID, fileName, extractedText string) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: fileName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(extractedText) == "" {
		return Document{}, fmt.Errorf("%w: extractedText is required", ErrInvalidInput)
	}

	doc := Document{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		ExtractedText: extractedText,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	metrics.IncDocumentCreated()
	return doc, nil
}

// List returns all documents owned by the user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a single owned document.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if strings.TrimSpace(documentID) == "" {
		return Document{}, fmt.Errorf("%w: document id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// Delete removes an owned document. It reports success whether or not a
// matching owned row existed.
func (s *Service) Delete(ctx context.Context, userID, documentID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if strings.TrimSpace(documentID) == "" {
		return fmt.Errorf("%w: document id required", ErrInvalidInput)
	}
	if err := s.Repo.DeleteByID(ctx, userID, documentID); err != nil {
		return err
	}
	metrics.IncDocumentDeleted()
	return nil
}
