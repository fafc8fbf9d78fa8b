package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OcrJob represents a document-extraction job for data transfer between
// layers. Successes and Failures hold the itemized per-page outcomes as
// stored in the JSON columns.
type OcrJob struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	FileName   string          `json:"file_name"`
	Status     string          `json:"status"`
	Progress   int             `json:"progress"`
	CreatedAt  time.Time       `json:"created_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
	Successes  json.RawMessage `json:"successes,omitempty"`
	Failures   json.RawMessage `json:"failures,omitempty"`
}

// PageSuccess is one entry of an OcrJob successes column.
type PageSuccess struct {
	PageNumber int      `json:"page_number"`
	Data       Passport `json:"data"`
}

// PageFailure is one entry of an OcrJob failures column. Page number 0 is
// reserved for document-level faults.
type PageFailure struct {
	PageNumber int    `json:"page_number"`
	Detail     string `json:"detail"`
}
