package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportRecord describes one produced export artifact. Rows are kept for
// bookkeeping only; the resume itself never lives in the database.
type ExportRecord struct {
	ID        uuid.UUID `json:"id"`
	Format    string    `json:"format"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
