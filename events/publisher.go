package events

import (
	"context"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/pm-platform/registry/config"
)

//go:generate go tool mockgen -source=./publisher.go -destination=./test/mock_publisher.go -package test

// Publisher emits lifecycle events. Publish is fire-and-forget: it never
// blocks on bus acknowledgment and never surfaces failures to the caller, so
// a failed publish is silently lost. Delivery is best-effort, not
// at-least-once.
type Publisher interface {
	Publish(event PatientEvent)
}

func NewConn(cfg *config.Config, lifecycle fx.Lifecycle) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.NatsUrl, nats.Name("registry"))
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return conn.Drain()
		},
	})

	return conn, nil
}

type publisher struct {
	conn   *nats.Conn
	logger *zap.SugaredLogger
}

var _ Publisher = &publisher{}

func NewPublisher(conn *nats.Conn, logger *zap.SugaredLogger) Publisher {
	return &publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish hands the encoded event to the client's outbound buffer and
// returns. Encoding and send errors are logged and swallowed here; they must
// never fail the operation that triggered the event.
func (p *publisher) Publish(event PatientEvent) {
	payload, err := Encode(event)
	if err != nil {
		p.logger.Errorw("error encoding patient event", "patientId", event.PatientId, "error", err)
		return
	}

	if err := p.conn.Publish(SubjectPatient, payload); err != nil {
		p.logger.Errorw("error publishing patient event", "patientId", event.PatientId, "error", err)
	}
}
