package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionService interface {
	GetSession(ctx context.Context, userID primitive.ObjectID) (*domain.Session, error)
}

type sessionService struct {
	profiles    ProfileService
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

func NewSessionService(profiles ProfileService, workoutRepo repository.WorkoutRepository) SessionService {
	return &sessionService{profiles: profiles, workoutRepo: workoutRepo, now: time.Now}
}

func (s *sessionService) GetSession(ctx context.Context, userID primitive.ObjectID) (*domain.Session, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.BuildSession(profile, workouts, s.now()), nil
}
