package repository

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository stores login credentials.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProfileRepository stores one Profile per user, keyed by the user's ID.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error)
	UpdateDisplayName(ctx context.Context, id primitive.ObjectID, displayName string) error
	SetPhotoKey(ctx context.Context, id primitive.ObjectID, key string) error

	// AddName and RenameName return ErrDuplicate when another name in the
	// list has the same normalised text.
	AddName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error
	RenameName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID, text string) error
	// RemoveName only removes names whose CanDelete flag is still set.
	RemoveName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID string) error
	// MarkNamesInUse clears CanDelete on every listed name. It returns
	// ErrNotFound unless all of them exist.
	MarkNamesInUse(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameIDs []string) error
}

// WorkoutRepository stores workouts. Every lookup is scoped to the owner.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
