package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	return m.CreateFunc(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.DeleteFunc(ctx, id)
}

type mockProfileRepo struct {
	CreateFunc            func(ctx context.Context, profile *domain.Profile) error
	GetByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error)
	UpdateDisplayNameFunc func(ctx context.Context, id primitive.ObjectID, displayName string) error
	SetPhotoKeyFunc       func(ctx context.Context, id primitive.ObjectID, key string) error
	AddNameFunc           func(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error
	RenameNameFunc        func(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID, text string) error
	RemoveNameFunc        func(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID string) error
	MarkNamesInUseFunc    func(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameIDs []string) error
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.CreateFunc(ctx, profile)
}
func (m *mockProfileRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockProfileRepo) UpdateDisplayName(ctx context.Context, id primitive.ObjectID, displayName string) error {
	return m.UpdateDisplayNameFunc(ctx, id, displayName)
}
func (m *mockProfileRepo) SetPhotoKey(ctx context.Context, id primitive.ObjectID, key string) error {
	return m.SetPhotoKeyFunc(ctx, id, key)
}
func (m *mockProfileRepo) AddName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error {
	return m.AddNameFunc(ctx, id, kind, name)
}
func (m *mockProfileRepo) RenameName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID, text string) error {
	return m.RenameNameFunc(ctx, id, kind, nameID, text)
}
func (m *mockProfileRepo) RemoveName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID string) error {
	return m.RemoveNameFunc(ctx, id, kind, nameID)
}
func (m *mockProfileRepo) MarkNamesInUse(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameIDs []string) error {
	if m.MarkNamesInUseFunc == nil {
		return nil
	}
	return m.MarkNamesInUseFunc(ctx, id, kind, nameIDs)
}

type mockWorkoutRepo struct {
	CreateFunc     func(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByIDFunc    func(ctx context.Context, id, userID primitive.ObjectID) (*domain.Workout, error)
	ListByUserFunc func(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	UpdateFunc     func(ctx context.Context, workout *domain.Workout) error
	DeleteFunc     func(ctx context.Context, id, userID primitive.ObjectID) error
}

func (m *mockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	return m.CreateFunc(ctx, workout)
}
func (m *mockWorkoutRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Workout, error) {
	return m.GetByIDFunc(ctx, id, userID)
}
func (m *mockWorkoutRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return m.ListByUserFunc(ctx, userID)
}
func (m *mockWorkoutRepo) Update(ctx context.Context, workout *domain.Workout) error {
	return m.UpdateFunc(ctx, workout)
}
func (m *mockWorkoutRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	return m.DeleteFunc(ctx, id, userID)
}

// memDenylist is an in-memory cache.TokenDenylist.
type memDenylist struct {
	revoked map[string]time.Time
	err     error
}

func (d *memDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if d.revoked == nil {
		d.revoked = map[string]time.Time{}
	}
	d.revoked[tokenID] = expiresAt
	return nil
}
func (d *memDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	_, ok := d.revoked[tokenID]
	return ok, nil
}

// memDraftStore is an in-memory cache.DraftStore.
type memDraftStore struct {
	drafts   map[string]*domain.WorkoutDraft
	clearErr error
}

func (s *memDraftStore) Get(ctx context.Context, userID string) (*domain.WorkoutDraft, bool, error) {
	d, ok := s.drafts[userID]
	return d, ok, nil
}
func (s *memDraftStore) Save(ctx context.Context, userID string, draft *domain.WorkoutDraft) error {
	if s.drafts == nil {
		s.drafts = map[string]*domain.WorkoutDraft{}
	}
	s.drafts[userID] = draft
	return nil
}
func (s *memDraftStore) Clear(ctx context.Context, userID string) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	delete(s.drafts, userID)
	return nil
}

type mockFileStorage struct {
	uploadURLErr error
	exists       bool
	existsErr    error
	deleted      []string
}

func (f *mockFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	if f.uploadURLErr != nil {
		return "", f.uploadURLErr
	}
	return "https://storage.test/put/" + objectKey, nil
}
func (f *mockFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}
func (f *mockFileStorage) ObjectExists(ctx context.Context, objectKey string) (bool, error) {
	return f.exists, f.existsErr
}
func (f *mockFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}
