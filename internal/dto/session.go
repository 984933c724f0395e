package dto

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"statement-analyzer/internal/models"
)

var ErrInvalidDataURL = errors.New("contents must be a base64 data URL")

// UploadRequest is the JSON form of a statement upload. Contents is a data
// URL such as "data:text/csv;base64,RGF0ZS...".
type UploadRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
	Contents string `json:"contents" validate:"required"`
}

// Decode returns the raw bytes carried by Contents
func (r *UploadRequest) Decode() ([]byte, error) {
	header, payload, found := strings.Cut(r.Contents, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidDataURL
	}

	content, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, ErrInvalidDataURL
	}
	return content, nil
}

// SessionResponse is the public view of a ledger session
type SessionResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSessionResponse(session *models.LedgerSession) *SessionResponse {
	return &SessionResponse{
		ID:        session.ID.String(),
		Filename:  session.Filename,
		RowCount:  session.RowCount,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}
