package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Mess facility names a student can register with.
var Messes = []string{"Anna Mess", "Bharathiar Mess", "Tagore Mess", "Gandhi Mess"}

// Dietary categories served by a mess.
var MessTypes = []string{"Veg", "Non-Veg", "Special", "Night mess"}

// Student is a registered mess member, keyed by the unique registration number.
type Student struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	RegNo      string        `bson:"regNo" json:"regNo"`
	Name       string        `bson:"name" json:"name"`
	Block      string        `bson:"block" json:"block"`
	RoomNumber string        `bson:"roomNumber" json:"roomNumber"`
	Mess       string        `bson:"mess" json:"mess"`
	MessType   string        `bson:"messType" json:"messType"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
