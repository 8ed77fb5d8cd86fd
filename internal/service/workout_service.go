package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutInput is what a client submits to create or replace a workout.
type WorkoutInput struct {
	Date          time.Time
	WorkoutNameID string
	Exercises     []domain.Exercise
}

type WorkoutService interface {
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	profileRepo repository.ProfileRepository
	log         logrus.FieldLogger
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository, profileRepo repository.ProfileRepository, log logrus.FieldLogger) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		profileRepo: profileRepo,
		log:         log,
	}
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.ListByUser(ctx, userID)
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:        userID,
		Date:          input.Date.UTC(),
		WorkoutNameID: input.WorkoutNameID,
		Exercises:     input.Exercises,
	}
	if err := s.markNamesInUse(ctx, workout); err != nil {
		return nil, err
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		s.log.WithError(err).WithField("userId", userID.Hex()).Warn("workout not stored, its names stay marked in use")
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	existing, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	existing.Date = input.Date.UTC()
	existing.WorkoutNameID = input.WorkoutNameID
	existing.Exercises = input.Exercises
	if err := s.markNamesInUse(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.workoutRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return existing, nil
}

// DeleteWorkout removes the workout. Names it referenced stay non-deletable.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if err := s.workoutRepo.Delete(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// validate checks the input against the owner's profile: every reference
// must name an existing entry.
func (s *workoutService) validate(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) error {
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidationFailed)
	}
	if input.WorkoutNameID == "" {
		return fmt.Errorf("%w: workout name is required", ErrValidationFailed)
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return mapProfileErr(err)
	}
	if _, ok := profile.FindName(domain.NameKindWorkout, input.WorkoutNameID); !ok {
		return fmt.Errorf("%w: unknown workout name %q", ErrValidationFailed, input.WorkoutNameID)
	}

	for i, ex := range input.Exercises {
		if _, ok := profile.FindName(domain.NameKindLift, ex.LiftID); !ok {
			return fmt.Errorf("%w: exercise %d: unknown lift %q", ErrValidationFailed, i+1, ex.LiftID)
		}
		if ex.Sets < 0 || ex.Reps < 0 || ex.Weight < 0 || math.IsNaN(ex.Weight) {
			return fmt.Errorf("%w: exercise %d: sets, reps and weight must not be negative", ErrValidationFailed, i+1)
		}
		if ex.PRStart != nil && ex.PREnd != nil && ex.PREnd.Before(*ex.PRStart) {
			return fmt.Errorf("%w: exercise %d: record end is before its start", ErrValidationFailed, i+1)
		}
	}
	return nil
}

// markNamesInUse claims every name the workout references before it is
// written. The repository only matches when all of them still exist, so a name
// deleted after validate rejects the write instead of leaving it dangling.
// Names claimed by a write that then fails stay non-deletable.
func (s *workoutService) markNamesInUse(ctx context.Context, workout *domain.Workout) error {
	if err := s.profileRepo.MarkNamesInUse(ctx, workout.UserID, domain.NameKindWorkout, []string{workout.WorkoutNameID}); err != nil {
		return nameClaimErr(err, "workout name")
	}
	if err := s.profileRepo.MarkNamesInUse(ctx, workout.UserID, domain.NameKindLift, workout.LiftIDs()); err != nil {
		return nameClaimErr(err, "lift")
	}
	return nil
}

func nameClaimErr(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: a referenced %s was removed", ErrValidationFailed, what)
	}
	return fmt.Errorf("mark %s in use: %w", what, err)
}
