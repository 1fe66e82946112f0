package documents

import "time"

// Document is a stored piece of extracted text owned by a user. The owning
// user ID never changes after creation and there is no update operation.
type Document struct {
	ID            string
	UserID        string
	FileName      string
	ExtractedText string
	CreatedAt     time.Time
}
