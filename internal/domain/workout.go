package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a dated collection of exercises tied to a workout name.
type Workout struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Date          time.Time          `bson:"date" json:"date"`
	WorkoutNameID string             `bson:"workoutNameId" json:"workoutNameId"`
	Exercises     []Exercise         `bson:"exercises" json:"exercises"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LiftIDs returns the distinct lift references in exercise order.
func (w *Workout) LiftIDs() []string {
	seen := make(map[string]struct{}, len(w.Exercises))
	ids := make([]string, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		if _, ok := seen[ex.LiftID]; ok {
			continue
		}
		seen[ex.LiftID] = struct{}{}
		ids = append(ids, ex.LiftID)
	}
	return ids
}

// WorkoutDraft is the in-progress workout a user has not saved yet.
// Every field is optional until it is committed.
type WorkoutDraft struct {
	Date          *time.Time `json:"date,omitempty"`
	WorkoutNameID string     `json:"workoutNameId,omitempty"`
	Exercises     []Exercise `json:"exercises"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
