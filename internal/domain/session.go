package domain

import (
	"sort"
	"time"

	"alcyxob/workout-tracker/internal/helpers"
)

// Session is the read model the client renders: a profile joined with all of
// its workouts, references resolved to display text.
type Session struct {
	UserID       string           `json:"userId"`
	DisplayName  string           `json:"displayName"`
	PhotoURL     string           `json:"photoUrl,omitempty"`
	LiftNames    []EditableName   `json:"liftNames"`
	WorkoutNames []EditableName   `json:"workoutNames"`
	Workouts     []SessionWorkout `json:"workouts"`
}

type SessionWorkout struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	DisplayDate   string            `json:"displayDate"`
	WorkoutNameID string            `json:"workoutNameId"`
	Name          string            `json:"name"`
	Exercises     []SessionExercise `json:"exercises"`
}

type SessionExercise struct {
	Exercise
	LiftName string `json:"liftName"`
}

// BuildSession joins profile and workouts. Workouts that belong to another
// user are skipped; unknown name references resolve to "".
func BuildSession(profile *Profile, workouts []Workout, now time.Time) *Session {
	s := &Session{
		UserID:       profile.ID.Hex(),
		DisplayName:  profile.DisplayName,
		PhotoURL:     profile.PhotoURL,
		LiftNames:    nonNilNames(profile.LiftNames),
		WorkoutNames: nonNilNames(profile.WorkoutNames),
		Workouts:     make([]SessionWorkout, 0, len(workouts)),
	}

	lifts := indexNames(profile.LiftNames)
	names := indexNames(profile.WorkoutNames)

	ordered := make([]Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.UserID == profile.ID {
			ordered = append(ordered, w)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.After(ordered[j].Date)
		}
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	for _, w := range ordered {
		sw := SessionWorkout{
			ID:            w.ID.Hex(),
			Date:          w.Date,
			DisplayDate:   helpers.FormatWorkoutDate(w.Date, now),
			WorkoutNameID: w.WorkoutNameID,
			Name:          names[w.WorkoutNameID],
			Exercises:     make([]SessionExercise, len(w.Exercises)),
		}
		for i, ex := range w.Exercises {
			sw.Exercises[i] = SessionExercise{Exercise: ex, LiftName: lifts[ex.LiftID]}
		}
		s.Workouts = append(s.Workouts, sw)
	}
	return s
}

func indexNames(names []EditableName) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[n.ID] = n.Text
	}
	return m
}

func nonNilNames(names []EditableName) []EditableName {
	if names == nil {
		return []EditableName{}
	}
	return names
}
