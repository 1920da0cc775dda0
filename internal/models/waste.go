package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Waste categories tracked by the ledger.
var WasteTypes = []string{"prep", "plate", "storage", "other"}

// WasteEntry is one append-only food waste record. Entries are never mutated
// or deleted through the exposed contract.
type WasteEntry struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      time.Time     `bson:"date" json:"date"`
	Type      string        `bson:"type" json:"type"`
	Amount    float64       `bson:"amount" json:"amount"`
	Reason    string        `bson:"reason" json:"reason"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
