package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pm-platform/registry/billing"
	"github.com/pm-platform/registry/events"
	"github.com/pm-platform/registry/patients"
)

type service struct {
	logger *zap.SugaredLogger

	repo      patients.Repository
	billing   billing.Client
	publisher events.Publisher
}

var _ patients.Service = &service{}

func NewService(repo patients.Repository, billingClient billing.Client, publisher events.Publisher, logger *zap.SugaredLogger) (patients.Service, error) {
	return &service{
		logger:    logger,
		repo:      repo,
		billing:   billingClient,
		publisher: publisher,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*patients.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*patients.Patient, error) {
	return s.repo.List(ctx)
}

// Create persists the patient, then provisions billing synchronously and
// emits the lifecycle event. The store write commits before billing is
// confirmed: a billing transport failure propagates to the caller but the
// patient record stays in place, with no rollback and no retry. The event
// publish can never fail the call.
func (s *service) Create(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	exists, err := s.repo.ExistsByEmail(ctx, patient.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, patients.ErrEmailExists
	}

	patient.Id = uuid.NewString()
	s.logger.Infow("creating patient", "patientId", patient.Id)

	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	if _, err := s.billing.CreateBillingAccount(ctx, created.Id, created.Name, created.Email); err != nil {
		s.logger.Errorw("patient persisted but billing provisioning failed",
			"patientId", created.Id,
			"error", err,
		)
		return nil, err
	}

	s.publisher.Publish(events.PatientEvent{
		PatientId: created.Id,
		Name:      created.Name,
		Email:     created.Email,
		EventType: events.EventTypePatientCreated,
	})

	return created, nil
}

// Update replaces all mutable fields or fails before any write. Updates
// trigger no billing call and no event.
func (s *service) Update(ctx context.Context, id string, patient patients.Patient) (*patients.Patient, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	// The patient may keep its own email; only a different holder conflicts.
	exists, err := s.repo.ExistsByEmailExcludingId(ctx, patient.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, patients.ErrEmailExists
	}

	s.logger.Infow("updating patient", "patientId", id)
	return s.repo.Update(ctx, id, patient)
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Infow("deleting patient", "patientId", id)
	return s.repo.Delete(ctx, id)
}
