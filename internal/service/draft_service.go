package service

import (
	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/helpers"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrDraftNotFound = errors.New("no workout in progress")

// DraftExerciseInput holds raw form values; numbers may arrive as strings.
type DraftExerciseInput struct {
	LiftID  string `json:"liftId"`
	Sets    any    `json:"sets"`
	Reps    any    `json:"reps"`
	Weight  any    `json:"weight"`
	PRStart string `json:"prStart,omitempty"`
	PREnd   string `json:"prEnd,omitempty"`
}

// DraftInput dates are YYYY-MM-DD or RFC 3339, like a workout's.
type DraftInput struct {
	Date          string               `json:"date"`
	WorkoutNameID string               `json:"workoutNameId"`
	Exercises     []DraftExerciseInput `json:"exercises"`
}

type DraftService interface {
	GetDraft(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutDraft, error)
	SaveDraft(ctx context.Context, userID primitive.ObjectID, input DraftInput) (*domain.WorkoutDraft, error)
	ClearDraft(ctx context.Context, userID primitive.ObjectID) error
	// CommitDraft saves the draft as a workout and clears it.
	CommitDraft(ctx context.Context, userID primitive.ObjectID) (*domain.Workout, error)
}

type draftService struct {
	drafts   cache.DraftStore
	workouts WorkoutService
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewDraftService(drafts cache.DraftStore, workouts WorkoutService, log logrus.FieldLogger) DraftService {
	return &draftService{drafts: drafts, workouts: workouts, log: log, now: time.Now}
}

func (s *draftService) GetDraft(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutDraft, error) {
	draft, ok, err := s.drafts.Get(ctx, userID.Hex())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// SaveDraft replaces the stored draft. Counts are coerced and unreadable dates
// dropped, never rejected, so a half-typed form can always be saved.
func (s *draftService) SaveDraft(ctx context.Context, userID primitive.ObjectID, input DraftInput) (*domain.WorkoutDraft, error) {
	draft := &domain.WorkoutDraft{
		Date:          draftDate(input.Date),
		WorkoutNameID: input.WorkoutNameID,
		Exercises:     make([]domain.Exercise, len(input.Exercises)),
		UpdatedAt:     s.now().UTC(),
	}
	for i, ex := range input.Exercises {
		draft.Exercises[i] = domain.Exercise{
			LiftID:  ex.LiftID,
			Sets:    helpers.PositiveInt(ex.Sets),
			Reps:    helpers.PositiveInt(ex.Reps),
			Weight:  helpers.PositiveFloat(ex.Weight),
			PRStart: draftDate(ex.PRStart),
			PREnd:   draftDate(ex.PREnd),
		}
	}
	if err := s.drafts.Save(ctx, userID.Hex(), draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *draftService) ClearDraft(ctx context.Context, userID primitive.ObjectID) error {
	return s.drafts.Clear(ctx, userID.Hex())
}

func (s *draftService) CommitDraft(ctx context.Context, userID primitive.ObjectID) (*domain.Workout, error) {
	draft, err := s.GetDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.Date == nil {
		return nil, fmt.Errorf("%w: date is required", ErrValidationFailed)
	}

	workout, err := s.workouts.CreateWorkout(ctx, userID, WorkoutInput{
		Date:          *draft.Date,
		WorkoutNameID: draft.WorkoutNameID,
		Exercises:     draft.Exercises,
	})
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Clear(ctx, userID.Hex()); err != nil {
		// The workout is saved; a stale draft is only an annoyance.
		s.log.WithError(err).WithField("userId", userID.Hex()).Warn("could not clear committed draft")
	}
	return workout, nil
}

// draftDate is nil for a blank or unreadable date.
func draftDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := helpers.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &t
}
