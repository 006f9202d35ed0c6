package models

import (
	"time"

	"github.com/dmitrijs2005/carregistry/internal/currency"
)

// Transfer is an issued payment instruction. Transfers are irreversible and
// append-only.
type Transfer struct {
	ID        string          `json:"id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    currency.Amount `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
