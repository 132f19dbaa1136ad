package patients

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/pm-platform/registry/store"
)

const patientsCollectionName = "patients"

//go:generate go tool mockgen -source=./patients.go -destination=./test/mock_patients.go -package test

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(patientsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

// Initialize creates the unique email index. Concurrent creates that pass the
// pre-insert uniqueness check both race to this constraint; the loser surfaces
// as a duplicate key error which is mapped back to ErrEmailExists.
func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniquePatientEmail"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, id string) (*Patient, error) {
	patient := &Patient{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *repository) List(ctx context.Context) ([]*Patient, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	var patients []*Patient
	if err = cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	return patients, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("error counting patients by email: %w", err)
	}
	return count > 0, nil
}

func (r *repository) ExistsByEmailExcludingId(ctx context.Context, email string, id string) (bool, error) {
	selector := bson.M{
		"email": email,
		"_id":   bson.M{"$ne": id},
	}
	count, err := r.collection.CountDocuments(ctx, selector)
	if err != nil {
		return false, fmt.Errorf("error counting patients by email: %w", err)
	}
	return count > 0, nil
}

func (r *repository) Create(ctx context.Context, patient Patient) (*Patient, error) {
	if _, err := r.collection.InsertOne(ctx, patient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	return r.Get(ctx, patient.Id)
}

func (r *repository) Update(ctx context.Context, id string, patient Patient) (*Patient, error) {
	update := bson.M{
		"$set": bson.M{
			"name":        patient.Name,
			"email":       patient.Email,
			"address":     patient.Address,
			"dateOfBirth": patient.DateOfBirth,
		},
	}

	updated := &Patient{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("error updating patient: %w", err)
	}

	return updated, nil
}

// Delete is unconditional. A missing id is not an error.
func (r *repository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error deleting patient: %w", err)
	}
	return nil
}
