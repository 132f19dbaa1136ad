package billing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/pm-platform/registry/config"
)

type client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *zap.SugaredLogger
}

var _ Client = &client{}

func NewClient(cfg *config.Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Client, error) {
	conn, err := grpc.NewClient(cfg.BillingAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create billing client: %w", err)
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return conn.Close()
		},
	})

	return NewClientForConn(conn, cfg.BillingTimeout, logger), nil
}

func NewClientForConn(conn *grpc.ClientConn, timeout time.Duration, logger *zap.SugaredLogger) Client {
	return &client{
		conn:    conn,
		timeout: timeout,
		logger:  logger,
	}
}

// CreateBillingAccount blocks for the full round trip, bounded by the
// configured timeout. Transport errors are returned opaque; there is no retry
// or circuit breaking at this layer.
func (c *client) CreateBillingAccount(ctx context.Context, patientId, name, email string) (*Account, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request := &AccountRequest{
		PatientId: patientId,
		Name:      name,
		Email:     email,
	}
	account := &Account{}
	if err := c.conn.Invoke(ctx, methodCreateBillingAccount, request, account, grpc.ForceCodec(jsonCodec{})); err != nil {
		return nil, fmt.Errorf("error creating billing account: %w", err)
	}

	c.logger.Infow("billing account created",
		"patientId", patientId,
		"accountId", account.AccountId,
		"status", account.Status,
	)
	return account, nil
}
