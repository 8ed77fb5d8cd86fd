package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAuthService struct {
	RegisterFunc     func(ctx context.Context, email, password, displayName string) (*domain.User, error)
	LoginFunc        func(ctx context.Context, email, password string) (string, *domain.User, error)
	LogoutFunc       func(ctx context.Context, claims *service.Claims) error
	AuthenticateFunc func(ctx context.Context, token string) (*service.Claims, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	return m.RegisterFunc(ctx, email, password, displayName)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return m.LoginFunc(ctx, email, password)
}
func (m *mockAuthService) Logout(ctx context.Context, claims *service.Claims) error {
	return m.LogoutFunc(ctx, claims)
}
func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*service.Claims, error) {
	return m.AuthenticateFunc(ctx, token)
}

type mockProfileService struct {
	GetProfileFunc            func(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	UpdateDisplayNameFunc     func(ctx context.Context, userID primitive.ObjectID, displayName string) (*domain.Profile, error)
	AddNameFunc               func(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, text string) (*domain.EditableName, error)
	RenameNameFunc            func(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID, text string) (*domain.EditableName, error)
	DeleteNameFunc            func(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID string) error
	RequestPhotoUploadURLFunc func(ctx context.Context, userID primitive.ObjectID, contentType string) (*service.PhotoUploadURL, error)
	ConfirmPhotoFunc          func(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.Profile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	return m.GetProfileFunc(ctx, userID)
}
func (m *mockProfileService) UpdateDisplayName(ctx context.Context, userID primitive.ObjectID, displayName string) (*domain.Profile, error) {
	return m.UpdateDisplayNameFunc(ctx, userID, displayName)
}
func (m *mockProfileService) AddName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, text string) (*domain.EditableName, error) {
	return m.AddNameFunc(ctx, userID, kind, text)
}
func (m *mockProfileService) RenameName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID, text string) (*domain.EditableName, error) {
	return m.RenameNameFunc(ctx, userID, kind, nameID, text)
}
func (m *mockProfileService) DeleteName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID string) error {
	return m.DeleteNameFunc(ctx, userID, kind, nameID)
}
func (m *mockProfileService) RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*service.PhotoUploadURL, error) {
	return m.RequestPhotoUploadURLFunc(ctx, userID, contentType)
}
func (m *mockProfileService) ConfirmPhoto(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.Profile, error) {
	return m.ConfirmPhotoFunc(ctx, userID, objectKey)
}

type mockWorkoutService struct {
	ListWorkoutsFunc  func(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	GetWorkoutFunc    func(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	CreateWorkoutFunc func(ctx context.Context, userID primitive.ObjectID, input service.WorkoutInput) (*domain.Workout, error)
	UpdateWorkoutFunc func(ctx context.Context, userID, workoutID primitive.ObjectID, input service.WorkoutInput) (*domain.Workout, error)
	DeleteWorkoutFunc func(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

func (m *mockWorkoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return m.ListWorkoutsFunc(ctx, userID)
}
func (m *mockWorkoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return m.GetWorkoutFunc(ctx, userID, workoutID)
}
func (m *mockWorkoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, input service.WorkoutInput) (*domain.Workout, error) {
	return m.CreateWorkoutFunc(ctx, userID, input)
}
func (m *mockWorkoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input service.WorkoutInput) (*domain.Workout, error) {
	return m.UpdateWorkoutFunc(ctx, userID, workoutID, input)
}
func (m *mockWorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	return m.DeleteWorkoutFunc(ctx, userID, workoutID)
}

type mockSessionService struct {
	GetSessionFunc func(ctx context.Context, userID primitive.ObjectID) (*domain.Session, error)
}

func (m *mockSessionService) GetSession(ctx context.Context, userID primitive.ObjectID) (*domain.Session, error) {
	return m.GetSessionFunc(ctx, userID)
}

type mockDraftService struct {
	GetDraftFunc    func(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutDraft, error)
	SaveDraftFunc   func(ctx context.Context, userID primitive.ObjectID, input service.DraftInput) (*domain.WorkoutDraft, error)
	ClearDraftFunc  func(ctx context.Context, userID primitive.ObjectID) error
	CommitDraftFunc func(ctx context.Context, userID primitive.ObjectID) (*domain.Workout, error)
}

func (m *mockDraftService) GetDraft(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutDraft, error) {
	return m.GetDraftFunc(ctx, userID)
}
func (m *mockDraftService) SaveDraft(ctx context.Context, userID primitive.ObjectID, input service.DraftInput) (*domain.WorkoutDraft, error) {
	return m.SaveDraftFunc(ctx, userID, input)
}
func (m *mockDraftService) ClearDraft(ctx context.Context, userID primitive.ObjectID) error {
	return m.ClearDraftFunc(ctx, userID)
}
func (m *mockDraftService) CommitDraft(ctx context.Context, userID primitive.ObjectID) (*domain.Workout, error) {
	return m.CommitDraftFunc(ctx, userID)
}

// fakeLimiter counts hits in memory.
type fakeLimiter struct {
	hits map[string]int64
	err  error
}

func (l *fakeLimiter) Hit(ctx context.Context, key string) (int64, time.Duration, error) {
	if l.err != nil {
		return 0, 0, l.err
	}
	if l.hits == nil {
		l.hits = map[string]int64{}
	}
	l.hits[key]++
	return l.hits[key], 30 * time.Second, nil
}
