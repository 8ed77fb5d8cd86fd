package domain

import "time"

// Exercise is one lift entry within a workout.
type Exercise struct {
	LiftID string  `bson:"liftId" json:"liftId"`
	Sets   int     `bson:"sets" json:"sets"`
	Reps   int     `bson:"reps" json:"reps"`
	Weight float64 `bson:"weight" json:"weight"`
	// Optional personal-record window.
	PRStart *time.Time `bson:"prStart,omitempty" json:"prStart,omitempty"`
	PREnd   *time.Time `bson:"prEnd,omitempty" json:"prEnd,omitempty"`
}
