// Package billing wraps the remote billing service. The registry only ever
// asks it to provision an account for a freshly created patient; it holds no
// long-lived reference to the account beyond the returned identifier.
package billing

import (
	"context"
)

const (
	serviceName                = "billing.BillingService"
	methodCreateBillingAccount = "/billing.BillingService/CreateBillingAccount"

	StatusActive = "ACTIVE"
)

//go:generate go tool mockgen -source=./billing.go -destination=./test/mock_billing.go -package test

type Client interface {
	CreateBillingAccount(ctx context.Context, patientId, name, email string) (*Account, error)
}

type AccountRequest struct {
	PatientId string `json:"patientId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type Account struct {
	AccountId string `json:"accountId"`
	Status    string `json:"status"`
}
