package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Meal slots a suggestion can target.
var MealTypes = []string{"breakfast", "lunch", "snacks", "dinner"}

// Suggestion priorities.
var Priorities = []string{"low", "medium", "high"}

// MenuSuggestion is a student-submitted menu idea for a meal slot.
type MenuSuggestion struct {
	ID                        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	MealType                  string        `bson:"mealType" json:"mealType"`
	Suggestion                string        `bson:"suggestion" json:"suggestion"`
	Priority                  string        `bson:"priority" json:"priority"`
	FeasibleForMassProduction bool          `bson:"feasibleForMassProduction" json:"feasibleForMassProduction"`
	Allergies                 bool          `bson:"allergies" json:"allergies"`
	Date                      time.Time     `bson:"date" json:"date"`
	CreatedAt                 time.Time     `bson:"createdAt" json:"createdAt"`
}
