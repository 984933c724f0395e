package events

import (
	"context"
	"testing"
	"time"

	"statement-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerIngestedMessage(t *testing.T) {
	event := &models.LedgerIngestedEvent{
		SessionID:  uuid.New(),
		Filename:   "statement.csv",
		RowCount:   3,
		TotalIn:    decimal.RequireFromString("2150"),
		TotalOut:   decimal.RequireFromString("-27.5"),
		Replaced:   true,
		OccurredAt: time.Date(2023, 12, 1, 9, 30, 0, 0, time.UTC),
	}

	msg := NewLedgerIngestedMessage(event)
	assert.Equal(t, MessageTypeLedgerIngested, msg.Type)
	assert.Equal(t, "2150.00", msg.TotalIn)
	assert.Equal(t, "-27.50", msg.TotalOut)

	body, err := msg.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"session_id":"`+event.SessionID.String()+`"`)
	assert.Contains(t, string(body), `"replaced":true`)

	decoded, err := LedgerIngestedMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestLedgerIngestedMessageFromJSON_Invalid(t *testing.T) {
	_, err := LedgerIngestedMessageFromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()
	assert.NoError(t, p.PublishLedgerIngested(context.Background(), &models.LedgerIngestedEvent{SessionID: uuid.New()}))
	assert.NoError(t, p.Close())
}
