package events

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Sink receives successfully decoded events on the consumer side.
type Sink interface {
	HandleEvent(event PatientEvent)
}

// Consumer runs a receive loop over the patient subject. Failure isolation is
// per message: a payload that fails to decode is logged and discarded, and the
// subscription keeps delivering.
type Consumer struct {
	conn   *nats.Conn
	sink   Sink
	logger *zap.SugaredLogger

	subscription *nats.Subscription
}

func NewConsumer(conn *nats.Conn, sink Sink, logger *zap.SugaredLogger) *Consumer {
	return &Consumer{
		conn:   conn,
		sink:   sink,
		logger: logger,
	}
}

func (c *Consumer) Start() error {
	subscription, err := c.conn.Subscribe(SubjectPatient, c.handleMessage)
	if err != nil {
		return err
	}

	c.subscription = subscription
	c.logger.Infow("consuming patient events", "subject", SubjectPatient)
	return nil
}

func (c *Consumer) Stop() error {
	if c.subscription == nil {
		return nil
	}
	return c.subscription.Drain()
}

func (c *Consumer) handleMessage(msg *nats.Msg) {
	event, err := Decode(msg.Data)
	if err != nil {
		c.logger.Errorw("error while processing event", "error", err)
		return
	}

	c.sink.HandleEvent(*event)
}

// LoggingSink is the analytics hand-off used by the consumer daemon.
type LoggingSink struct {
	Logger *zap.SugaredLogger
}

var _ Sink = &LoggingSink{}

func (s *LoggingSink) HandleEvent(event PatientEvent) {
	s.Logger.Infow("received patient event",
		"patientId", event.PatientId,
		"name", event.Name,
		"email", event.Email,
		"eventType", event.EventType,
	)
}
