package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleProfile(id primitive.ObjectID) *domain.Profile {
	return &domain.Profile{
		ID:          id,
		DisplayName: "Sam",
		LiftNames: []domain.EditableName{
			{ID: "squat", Text: "Back Squat", CanDelete: false},
			{ID: "bench", Text: "Bench Press", CanDelete: true},
		},
		WorkoutNames: []domain.EditableName{{ID: "legday", Text: "Leg Day", CanDelete: true}},
	}
}

func newProfileFixture(profile *domain.Profile) (*mockProfileRepo, *mockFileStorage, ProfileService) {
	repo := &mockProfileRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error) {
			if profile == nil || id != profile.ID {
				return nil, repository.ErrNotFound
			}
			cp := *profile
			return &cp, nil
		},
	}
	files := &mockFileStorage{exists: true}
	return repo, files, NewProfileService(repo, files, discardLogger())
}

func TestGetProfile_PresignsPhoto(t *testing.T) {
	id := primitive.NewObjectID()
	p := sampleProfile(id)
	p.PhotoKey = "profiles/" + id.Hex() + "/a.jpg"
	_, _, svc := newProfileFixture(p)

	got, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/get/"+p.PhotoKey, got.PhotoURL)

	_, err = svc.GetProfile(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateDisplayName(t *testing.T) {
	id := primitive.NewObjectID()
	p := sampleProfile(id)
	repo, _, svc := newProfileFixture(p)
	repo.UpdateDisplayNameFunc = func(ctx context.Context, gotID primitive.ObjectID, name string) error {
		p.DisplayName = name
		return nil
	}

	got, err := svc.UpdateDisplayName(context.Background(), id, "  Samantha ")
	require.NoError(t, err)
	assert.Equal(t, "Samantha", got.DisplayName)

	_, err = svc.UpdateDisplayName(context.Background(), id, " ")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAddName(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	var added domain.EditableName
	var addedKind domain.NameKind
	repo.AddNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error {
		added, addedKind = name, kind
		return nil
	}

	name, err := svc.AddName(context.Background(), id, domain.NameKindLift, "  Romanian   Deadlift ")
	require.NoError(t, err)
	assert.Equal(t, "Romanian Deadlift", name.Text)
	assert.True(t, name.CanDelete)
	assert.NotEmpty(t, name.ID)
	assert.Equal(t, *name, added)
	assert.Equal(t, domain.NameKindLift, addedKind)
}

func TestAddName_Rejects(t *testing.T) {
	id := primitive.NewObjectID()
	_, _, svc := newProfileFixture(sampleProfile(id))
	ctx := context.Background()

	_, err := svc.AddName(ctx, id, domain.NameKindLift, "benchpress")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = svc.AddName(ctx, id, domain.NameKindLift, "   ")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.AddName(ctx, id, domain.NameKindLift, strings.Repeat("x", 65))
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.AddName(ctx, id, domain.NameKind("colors"), "Red")
	assert.ErrorIs(t, err, ErrInvalidNameKind)

	_, err = svc.AddName(ctx, primitive.NewObjectID(), domain.NameKindLift, "Row")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAddName_LengthAfterCollapsingSpaces(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	var stored string
	repo.AddNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error {
		stored = name.Text
		return nil
	}

	raw := "  Romanian" + strings.Repeat(" ", 70) + "Deadlift "
	name, err := svc.AddName(context.Background(), id, domain.NameKindLift, raw)

	require.NoError(t, err)
	assert.Equal(t, "Romanian Deadlift", name.Text)
	assert.Equal(t, "Romanian Deadlift", stored)
}

func TestAddAndRename_LostDuplicateRace(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	// The profile read shows no clash; the conditional write finds one.
	repo.AddNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error {
		return repository.ErrDuplicate
	}
	repo.RenameNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, nameID, text string) error {
		return repository.ErrDuplicate
	}
	ctx := context.Background()

	_, err := svc.AddName(ctx, id, domain.NameKindLift, "Deadlift")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = svc.RenameName(ctx, id, domain.NameKindLift, "bench", "Deadlift")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestAddName_SameTextOtherKind(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	repo.AddNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error {
		return nil
	}

	_, err := svc.AddName(context.Background(), id, domain.NameKindWorkout, "Bench Press")
	assert.NoError(t, err)
}

func TestRenameName(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	repo.RenameNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, nameID, text string) error {
		return nil
	}
	ctx := context.Background()

	name, err := svc.RenameName(ctx, id, domain.NameKindLift, "bench", "BENCH press")
	require.NoError(t, err)
	assert.Equal(t, "BENCH press", name.Text)
	assert.Equal(t, "bench", name.ID)

	_, err = svc.RenameName(ctx, id, domain.NameKindLift, "bench", "back squat")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = svc.RenameName(ctx, id, domain.NameKindLift, "nope", "Row")
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestDeleteName(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	var removed string
	repo.RemoveNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, nameID string) error {
		removed = nameID
		return nil
	}
	ctx := context.Background()

	require.NoError(t, svc.DeleteName(ctx, id, domain.NameKindLift, "bench"))
	assert.Equal(t, "bench", removed)

	assert.ErrorIs(t, svc.DeleteName(ctx, id, domain.NameKindLift, "squat"), ErrNameInUse)
	assert.ErrorIs(t, svc.DeleteName(ctx, id, domain.NameKindLift, "nope"), ErrNameNotFound)
	assert.ErrorIs(t, svc.DeleteName(ctx, id, "bogus", "bench"), ErrInvalidNameKind)
}

func TestDeleteName_LostRace(t *testing.T) {
	id := primitive.NewObjectID()
	repo, _, svc := newProfileFixture(sampleProfile(id))
	repo.RemoveNameFunc = func(ctx context.Context, gotID primitive.ObjectID, kind domain.NameKind, nameID string) error {
		return repository.ErrNotFound
	}

	err := svc.DeleteName(context.Background(), id, domain.NameKindLift, "bench")
	assert.ErrorIs(t, err, ErrNameInUse)
}

func TestRequestPhotoUploadURL(t *testing.T) {
	id := primitive.NewObjectID()
	_, files, svc := newProfileFixture(sampleProfile(id))
	ctx := context.Background()

	got, err := svc.RequestPhotoUploadURL(ctx, id, "Image/PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.ObjectKey, "profiles/"+id.Hex()+"/"))
	assert.True(t, strings.HasSuffix(got.ObjectKey, ".png"))
	assert.Equal(t, "https://storage.test/put/"+got.ObjectKey, got.UploadURL)

	_, err = svc.RequestPhotoUploadURL(ctx, id, "video/mp4")
	assert.ErrorIs(t, err, ErrInvalidContentType)

	files.uploadURLErr = errors.New("s3 down")
	_, err = svc.RequestPhotoUploadURL(ctx, id, "image/jpeg")
	assert.ErrorIs(t, err, ErrPhotoStorageFailure)
}

func TestConfirmPhoto(t *testing.T) {
	id := primitive.NewObjectID()
	p := sampleProfile(id)
	p.PhotoKey = "profiles/" + id.Hex() + "/old.jpg"
	repo, files, svc := newProfileFixture(p)
	repo.SetPhotoKeyFunc = func(ctx context.Context, gotID primitive.ObjectID, key string) error {
		p.PhotoKey = key
		return nil
	}
	newKey := "profiles/" + id.Hex() + "/new.jpg"

	got, err := svc.ConfirmPhoto(context.Background(), id, newKey)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/get/"+newKey, got.PhotoURL)
	assert.Equal(t, []string{"profiles/" + id.Hex() + "/old.jpg"}, files.deleted)
}

func TestConfirmPhoto_Rejects(t *testing.T) {
	id := primitive.NewObjectID()
	_, files, svc := newProfileFixture(sampleProfile(id))
	ctx := context.Background()

	_, err := svc.ConfirmPhoto(ctx, id, "profiles/"+primitive.NewObjectID().Hex()+"/x.jpg")
	assert.ErrorIs(t, err, ErrPhotoKeyMismatch)

	_, err = svc.ConfirmPhoto(ctx, id, "profiles/"+id.Hex()+"/../other/x.jpg")
	assert.ErrorIs(t, err, ErrPhotoKeyMismatch)

	files.exists = false
	_, err = svc.ConfirmPhoto(ctx, id, "profiles/"+id.Hex()+"/x.jpg")
	assert.ErrorIs(t, err, ErrPhotoNotUploaded)
}
