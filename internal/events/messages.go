package events

import (
	"encoding/json"
	"time"

	"statement-analyzer/internal/models"

	"github.com/google/uuid"
)

// MessageTypeLedgerIngested identifies ledger ingestion messages
const MessageTypeLedgerIngested = "ledger.ingested"

// LedgerIngestedMessage is the wire form of a LedgerIngestedEvent
type LedgerIngestedMessage struct {
	Type       string    `json:"type"`
	SessionID  uuid.UUID `json:"session_id"`
	Filename   string    `json:"filename"`
	RowCount   int       `json:"row_count"`
	TotalIn    string    `json:"total_in"`
	TotalOut   string    `json:"total_out"`
	Replaced   bool      `json:"replaced"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLedgerIngestedMessage builds the message for event
func NewLedgerIngestedMessage(event *models.LedgerIngestedEvent) *LedgerIngestedMessage {
	return &LedgerIngestedMessage{
		Type:       MessageTypeLedgerIngested,
		SessionID:  event.SessionID,
		Filename:   event.Filename,
		RowCount:   event.RowCount,
		TotalIn:    event.TotalIn.StringFixed(models.AmountPlaces),
		TotalOut:   event.TotalOut.StringFixed(models.AmountPlaces),
		Replaced:   event.Replaced,
		OccurredAt: event.OccurredAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerIngestedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerIngestedMessageFromJSON decodes a message from JSON bytes
func LedgerIngestedMessageFromJSON(data []byte) (*LedgerIngestedMessage, error) {
	var msg LedgerIngestedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
