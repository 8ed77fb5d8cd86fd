package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NameKind selects one of the two editable name lists on a Profile.
type NameKind string

const (
	NameKindLift    NameKind = "lifts"
	NameKindWorkout NameKind = "workouts"
)

// Valid reports whether k is a known list.
func (k NameKind) Valid() bool {
	return k == NameKindLift || k == NameKindWorkout
}

// Field is the profile document field holding the list.
func (k NameKind) Field() string {
	if k == NameKindWorkout {
		return "workoutNames"
	}
	return "liftNames"
}

// EditableName is a user-defined label for a lift or a workout.
// CanDelete turns false once any workout refers to the name.
type EditableName struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	CanDelete bool   `bson:"canDelete" json:"canDelete"`
	// Key is the normalised Text. The store matches on it to keep texts
	// unique within a list.
	Key string `bson:"key,omitempty" json:"-"`
}

// Profile is the per-user settings record.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"` // Same as the owning User.ID
	DisplayName  string             `bson:"displayName" json:"displayName"`
	PhotoKey     string             `bson:"photoKey,omitempty" json:"-"` // Object key in the photo bucket
	PhotoURL     string             `bson:"-" json:"photoUrl,omitempty"` // Presigned, filled per request
	LiftNames    []EditableName     `bson:"liftNames" json:"liftNames"`
	WorkoutNames []EditableName     `bson:"workoutNames" json:"workoutNames"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Names returns the list selected by kind.
func (p *Profile) Names(kind NameKind) []EditableName {
	if kind == NameKindWorkout {
		return p.WorkoutNames
	}
	return p.LiftNames
}

// FindName looks up a name by ID in the list selected by kind.
func (p *Profile) FindName(kind NameKind, id string) (EditableName, bool) {
	for _, n := range p.Names(kind) {
		if n.ID == id {
			return n, true
		}
	}
	return EditableName{}, false
}
