package patients

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("patient not found")
var ErrEmailExists = errors.New("a patient with this email already exists")

type Service interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Create(ctx context.Context, patient Patient) (*Patient, error)
	Update(ctx context.Context, id string, patient Patient) (*Patient, error)
	Delete(ctx context.Context, id string) error
}

// Patient ids are uuids assigned on create and immutable afterwards.
type Patient struct {
	Id             string `bson:"_id,omitempty"`
	Name           string `bson:"name"`
	Email          string `bson:"email"`
	Address        string `bson:"address"`
	DateOfBirth    string `bson:"dateOfBirth"`
	RegisteredDate string `bson:"registeredDate"`
}

type Repository interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcludingId(ctx context.Context, email string, id string) (bool, error)
	Create(ctx context.Context, patient Patient) (*Patient, error)
	Update(ctx context.Context, id string, patient Patient) (*Patient, error)
	Delete(ctx context.Context, id string) error
}
