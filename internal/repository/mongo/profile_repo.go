package mongo

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/helpers"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository.
// Name lists are embedded arrays on the profile document.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new Profile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Create inserts a profile. The caller sets ID to the owning user's ID.
func (r *mongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == primitive.NilObjectID {
		return errors.New("profile requires the owning user ID")
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.LiftNames == nil {
		profile.LiftNames = []domain.EditableName{}
	}
	if profile.WorkoutNames == nil {
		profile.WorkoutNames = []domain.EditableName{}
	}

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile.
func (r *mongoProfileRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *mongoProfileRepository) UpdateDisplayName(ctx context.Context, id primitive.ObjectID, displayName string) error {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"displayName": displayName, "updatedAt": time.Now().UTC()},
	})
}

func (r *mongoProfileRepository) SetPhotoKey(ctx context.Context, id primitive.ObjectID, key string) error {
	return r.updateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"photoKey": key, "updatedAt": time.Now().UTC()},
	})
}

// AddName appends name unless the list already holds the same normalised
// text. It returns ErrDuplicate in that case.
func (r *mongoProfileRepository) AddName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, name domain.EditableName) error {
	field := kind.Field()
	name.Key = helpers.NormalizeName(name.Text)
	filter := bson.M{"_id": id, field + ".key": bson.M{"$ne": name.Key}}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$push": bson.M{field: name},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return r.missingOrDuplicate(ctx, bson.M{"_id": id})
	}
	return nil
}

// RenameName sets the text unless another name in the list already has it.
func (r *mongoProfileRepository) RenameName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID, text string) error {
	field := kind.Field()
	key := helpers.NormalizeName(text)
	filter := bson.M{
		"_id":         id,
		field + ".id": nameID,
		field: bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"key": key,
			"id":  bson.M{"$ne": nameID},
		}}},
	}
	update := bson.M{"$set": bson.M{
		field + ".$[n].text": text,
		field + ".$[n].key":  key,
		"updatedAt":          time.Now().UTC(),
	}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"n.id": nameID}},
	})

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return r.missingOrDuplicate(ctx, bson.M{"_id": id, field + ".id": nameID})
	}
	return nil
}

// missingOrDuplicate explains a conditional name write that matched nothing:
// ErrNotFound if target is gone, otherwise the text was taken.
func (r *mongoProfileRepository) missingOrDuplicate(ctx context.Context, target bson.M) error {
	n, err := r.collection.CountDocuments(ctx, target)
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return repository.ErrDuplicate
}

func (r *mongoProfileRepository) RemoveName(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameID string) error {
	field := kind.Field()
	filter := bson.M{
		"_id": id,
		field: bson.M{"$elemMatch": bson.M{"id": nameID, "canDelete": true}},
	}
	return r.updateOne(ctx, filter, bson.M{
		"$pull": bson.M{field: bson.M{"id": nameID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *mongoProfileRepository) MarkNamesInUse(ctx context.Context, id primitive.ObjectID, kind domain.NameKind, nameIDs []string) error {
	if len(nameIDs) == 0 {
		return nil
	}
	field := kind.Field()
	filter := bson.M{"_id": id, field + ".id": bson.M{"$all": nameIDs}}
	update := bson.M{"$set": bson.M{field + ".$[n].canDelete": false}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"n.id": bson.M{"$in": nameIDs}}},
	})

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoProfileRepository) updateOne(ctx context.Context, filter, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
