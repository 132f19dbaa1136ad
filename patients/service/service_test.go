package service_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pm-platform/registry/billing"
	billingTest "github.com/pm-platform/registry/billing/test"
	"github.com/pm-platform/registry/events"
	eventsTest "github.com/pm-platform/registry/events/test"
	"github.com/pm-platform/registry/patients"
	"github.com/pm-platform/registry/patients/service"
	patientsTest "github.com/pm-platform/registry/patients/test"
	"github.com/pm-platform/registry/test"
)

var _ = Describe("Patients Service", func() {
	var ctrl *gomock.Controller
	var repo *patientsTest.MockRepository
	var billingClient *billingTest.MockClient
	var publisher *eventsTest.MockPublisher
	var patientsService patients.Service

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = patientsTest.NewMockRepository(ctrl)
		billingClient = billingTest.NewMockClient(ctrl)
		publisher = eventsTest.NewMockPublisher(ctrl)

		var err error
		patientsService, err = service.NewService(repo, billingClient, publisher, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Create", func() {
		var patient patients.Patient

		BeforeEach(func() {
			patient = patientsTest.RandomPatient()
		})

		It("persists the patient, provisions billing and publishes an event in order", func() {
			account := &billing.Account{AccountId: "12345", Status: billing.StatusActive}

			gomock.InOrder(
				repo.EXPECT().
					ExistsByEmail(gomock.Any(), patient.Email).
					Return(false, nil),
				repo.EXPECT().
					Create(gomock.Any(), test.Match(func(p patients.Patient) bool {
						return p.Id != "" && p.Email == patient.Email
					})).
					DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
						created := p
						return &created, nil
					}),
				billingClient.EXPECT().
					CreateBillingAccount(gomock.Any(), gomock.Any(), patient.Name, patient.Email).
					Return(account, nil),
				publisher.EXPECT().
					Publish(test.Match(func(e events.PatientEvent) bool {
						return e.EventType == events.EventTypePatientCreated &&
							e.Email == patient.Email &&
							e.Name == patient.Name &&
							e.PatientId != ""
					})),
			)

			created, err := patientsService.Create(context.Background(), patient)
			Expect(err).ToNot(HaveOccurred())
			Expect(created).ToNot(BeNil())
			Expect(created.Email).To(Equal(patient.Email))

			_, err = uuid.Parse(created.Id)
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns an email conflict without any side effects when the email is taken", func() {
			repo.EXPECT().
				ExistsByEmail(gomock.Any(), patient.Email).
				Return(true, nil)

			created, err := patientsService.Create(context.Background(), patient)
			Expect(err).To(MatchError(patients.ErrEmailExists))
			Expect(created).To(BeNil())
		})

		It("returns an email conflict when a concurrent create wins the insert race", func() {
			repo.EXPECT().
				ExistsByEmail(gomock.Any(), patient.Email).
				Return(false, nil)
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil, patients.ErrEmailExists)

			created, err := patientsService.Create(context.Background(), patient)
			Expect(err).To(MatchError(patients.ErrEmailExists))
			Expect(created).To(BeNil())
		})

		It("propagates a billing failure without removing the persisted patient and without publishing", func() {
			transportErr := fmt.Errorf("billing service unavailable")

			repo.EXPECT().
				ExistsByEmail(gomock.Any(), patient.Email).
				Return(false, nil)
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
					created := p
					return &created, nil
				})
			billingClient.EXPECT().
				CreateBillingAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, transportErr)

			created, err := patientsService.Create(context.Background(), patient)
			Expect(err).To(MatchError(transportErr))
			Expect(created).To(BeNil())
		})

		It("succeeds regardless of what the publisher does with the event", func() {
			repo.EXPECT().
				ExistsByEmail(gomock.Any(), patient.Email).
				Return(false, nil)
			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, p patients.Patient) (*patients.Patient, error) {
					created := p
					return &created, nil
				})
			billingClient.EXPECT().
				CreateBillingAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&billing.Account{AccountId: "12345", Status: billing.StatusActive}, nil)
			// The publisher contract has no failure path back to the caller;
			// a lost publish must leave the result untouched.
			publisher.EXPECT().
				Publish(gomock.Any()).
				Do(func(events.PatientEvent) {})

			created, err := patientsService.Create(context.Background(), patient)
			Expect(err).ToNot(HaveOccurred())
			Expect(created).ToNot(BeNil())
		})
	})

	Describe("Update", func() {
		var existing patients.Patient
		var update patients.Patient

		BeforeEach(func() {
			existing = patientsTest.RandomPatient()
			existing.Id = uuid.NewString()
			update = patientsTest.RandomPatient()
		})

		It("returns not found for an unknown id", func() {
			repo.EXPECT().
				Get(gomock.Any(), existing.Id).
				Return(nil, patients.ErrNotFound)

			updated, err := patientsService.Update(context.Background(), existing.Id, update)
			Expect(err).To(MatchError(patients.ErrNotFound))
			Expect(updated).To(BeNil())
		})

		It("returns an email conflict when another patient holds the email", func() {
			repo.EXPECT().
				Get(gomock.Any(), existing.Id).
				Return(&existing, nil)
			repo.EXPECT().
				ExistsByEmailExcludingId(gomock.Any(), update.Email, existing.Id).
				Return(true, nil)

			updated, err := patientsService.Update(context.Background(), existing.Id, update)
			Expect(err).To(MatchError(patients.ErrEmailExists))
			Expect(updated).To(BeNil())
		})

		It("allows the patient to keep its own email", func() {
			update.Email = existing.Email

			repo.EXPECT().
				Get(gomock.Any(), existing.Id).
				Return(&existing, nil)
			repo.EXPECT().
				ExistsByEmailExcludingId(gomock.Any(), existing.Email, existing.Id).
				Return(false, nil)
			repo.EXPECT().
				Update(gomock.Any(), existing.Id, update).
				DoAndReturn(func(ctx context.Context, id string, p patients.Patient) (*patients.Patient, error) {
					p.Id = id
					return &p, nil
				})

			updated, err := patientsService.Update(context.Background(), existing.Id, update)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Email).To(Equal(existing.Email))
		})

		It("replaces the mutable fields without billing calls or events", func() {
			repo.EXPECT().
				Get(gomock.Any(), existing.Id).
				Return(&existing, nil)
			repo.EXPECT().
				ExistsByEmailExcludingId(gomock.Any(), update.Email, existing.Id).
				Return(false, nil)
			repo.EXPECT().
				Update(gomock.Any(), existing.Id, update).
				DoAndReturn(func(ctx context.Context, id string, p patients.Patient) (*patients.Patient, error) {
					p.Id = id
					return &p, nil
				})

			updated, err := patientsService.Update(context.Background(), existing.Id, update)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Id).To(Equal(existing.Id))
			Expect(updated.Name).To(Equal(update.Name))
			Expect(updated.Address).To(Equal(update.Address))
			Expect(updated.DateOfBirth).To(Equal(update.DateOfBirth))
		})
	})

	Describe("Delete", func() {
		It("deletes unconditionally by id", func() {
			id := uuid.NewString()
			repo.EXPECT().
				Delete(gomock.Any(), id).
				Return(nil)

			Expect(patientsService.Delete(context.Background(), id)).To(Succeed())
		})
	})

	Describe("List", func() {
		It("returns all records", func() {
			first := patientsTest.RandomPatient()
			second := patientsTest.RandomPatient()
			repo.EXPECT().
				List(gomock.Any()).
				Return([]*patients.Patient{&first, &second}, nil)

			list, err := patientsService.List(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})
	})
})
