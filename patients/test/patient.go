package test

import (
	"time"

	"github.com/pm-platform/registry/patients"
	"github.com/pm-platform/registry/test"
)

func RandomPatient() patients.Patient {
	return patients.Patient{
		Name:           test.Faker.Person().Name(),
		Email:          test.Faker.Internet().Email(),
		Address:        test.Faker.Address().Address(),
		DateOfBirth:    test.Faker.Time().ISO8601(time.Now())[:10],
		RegisteredDate: time.Now().Format("2006-01-02"),
	}
}
