package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/helpers"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrNameNotFound        = errors.New("name not found")
	ErrDuplicateName       = errors.New("a name with this text already exists")
	ErrNameInUse           = errors.New("name is used by a workout and cannot be deleted")
	ErrInvalidNameKind     = errors.New("name kind must be 'lifts' or 'workouts'")
	ErrInvalidContentType  = errors.New("photo must be an image")
	ErrPhotoKeyMismatch    = errors.New("photo key does not belong to this user")
	ErrPhotoNotUploaded    = errors.New("photo has not been uploaded")
	ErrPhotoStorageFailure = errors.New("photo storage is unavailable")
)

const maxNameLength = 64

// PhotoUploadURL is returned to the client, which PUTs the image to UploadURL
// and then confirms ObjectKey.
type PhotoUploadURL struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	UpdateDisplayName(ctx context.Context, userID primitive.ObjectID, displayName string) (*domain.Profile, error)

	AddName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, text string) (*domain.EditableName, error)
	RenameName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID, text string) (*domain.EditableName, error)
	DeleteName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID string) error

	RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*PhotoUploadURL, error)
	ConfirmPhoto(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	fileStorage storage.FileStorage
	log         logrus.FieldLogger
}

func NewProfileService(profileRepo repository.ProfileRepository, fileStorage storage.FileStorage, log logrus.FieldLogger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		fileStorage: fileStorage,
		log:         log,
	}
}

// GetProfile loads the profile and presigns its photo. A photo that cannot be
// presigned is logged and left blank rather than failing the request.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if profile.PhotoKey != "" {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, profile.PhotoKey, 0)
		if err != nil {
			s.log.WithError(err).WithField("userId", userID.Hex()).Warn("could not presign profile photo")
		} else {
			profile.PhotoURL = url
		}
	}
	return profile, nil
}

func (s *profileService) UpdateDisplayName(ctx context.Context, userID primitive.ObjectID, displayName string) (*domain.Profile, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", ErrValidationFailed)
	}
	if err := s.profileRepo.UpdateDisplayName(ctx, userID, displayName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *profileService) AddName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, text string) (*domain.EditableName, error) {
	text, err := cleanName(kind, text)
	if err != nil {
		return nil, err
	}
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if helpers.IsDuplicateName(nameTexts(profile.Names(kind), ""), text) {
		return nil, ErrDuplicateName
	}

	name := domain.EditableName{ID: uuid.NewString(), Text: text, CanDelete: true}
	if err := s.profileRepo.AddName(ctx, userID, kind, name); err != nil {
		// A concurrent add of the same text got there first.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, mapProfileErr(err)
	}
	return &name, nil
}

func (s *profileService) RenameName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID, text string) (*domain.EditableName, error) {
	text, err := cleanName(kind, text)
	if err != nil {
		return nil, err
	}
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	name, ok := profile.FindName(kind, nameID)
	if !ok {
		return nil, ErrNameNotFound
	}
	// Renaming to the same text (or a different casing of it) is allowed.
	if helpers.IsDuplicateName(nameTexts(profile.Names(kind), nameID), text) {
		return nil, ErrDuplicateName
	}

	if err := s.profileRepo.RenameName(ctx, userID, kind, nameID, text); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrNameNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	name.Text = text
	return &name, nil
}

func (s *profileService) DeleteName(ctx context.Context, userID primitive.ObjectID, kind domain.NameKind, nameID string) error {
	if !kind.Valid() {
		return ErrInvalidNameKind
	}
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}
	name, ok := profile.FindName(kind, nameID)
	if !ok {
		return ErrNameNotFound
	}
	if !name.CanDelete {
		return ErrNameInUse
	}

	if err := s.profileRepo.RemoveName(ctx, userID, kind, nameID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// A workout claimed the name between our read and the delete.
			return ErrNameInUse
		}
		return err
	}
	return nil
}

// RequestPhotoUploadURL issues a presigned PUT for a new object under the
// user's prefix. Nothing is recorded until ConfirmPhoto.
func (s *profileService) RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*PhotoUploadURL, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, ErrInvalidContentType
	}

	objectKey := path.Join(photoPrefix(userID), uuid.NewString()+ext)
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPhotoStorageFailure, err)
	}
	return &PhotoUploadURL{UploadURL: url, ObjectKey: objectKey}, nil
}

// ConfirmPhoto points the profile at an uploaded object and removes the
// previous photo.
func (s *profileService) ConfirmPhoto(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.Profile, error) {
	if !strings.HasPrefix(objectKey, photoPrefix(userID)+"/") || path.Clean(objectKey) != objectKey {
		return nil, ErrPhotoKeyMismatch
	}
	exists, err := s.fileStorage.ObjectExists(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPhotoStorageFailure, err)
	}
	if !exists {
		return nil, ErrPhotoNotUploaded
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.SetPhotoKey(ctx, userID, objectKey); err != nil {
		return nil, mapProfileErr(err)
	}
	if old := profile.PhotoKey; old != "" && old != objectKey {
		if err := s.fileStorage.DeleteObject(ctx, old); err != nil {
			s.log.WithError(err).WithField("key", old).Warn("could not delete replaced profile photo")
		}
	}
	return s.GetProfile(ctx, userID)
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/heic": ".heic",
}

func photoPrefix(userID primitive.ObjectID) string {
	return path.Join("profiles", userID.Hex())
}

func (s *profileService) loadProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapProfileErr(err)
	}
	return profile, nil
}

func mapProfileErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}

func cleanName(kind domain.NameKind, text string) (string, error) {
	if !kind.Valid() {
		return "", ErrInvalidNameKind
	}
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if len([]rune(text)) > maxNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrValidationFailed, maxNameLength)
	}
	return text, nil
}

// nameTexts lists the texts of names, skipping exceptID.
func nameTexts(names []domain.EditableName, exceptID string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n.ID != exceptID {
			out = append(out, n.Text)
		}
	}
	return out
}
