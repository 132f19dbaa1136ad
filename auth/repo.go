package auth

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const credentialsCollectionName = "credentials"

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(credentialsCollectionName),
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

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueCredentialEmail"),
		},
	})
	return err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	credential := &Credential{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(credential)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCredentialNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error finding credential: %w", err)
	}

	return credential, nil
}
