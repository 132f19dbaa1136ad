package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpPort       uint16        `envconfig:"REGISTRY_HTTP_PORT" default:"8080"`
	BillingAddress string        `envconfig:"REGISTRY_BILLING_ADDRESS" default:"localhost:9001"`
	BillingPort    uint16        `envconfig:"REGISTRY_BILLING_GRPC_PORT" default:"9001"`
	BillingTimeout time.Duration `envconfig:"REGISTRY_BILLING_TIMEOUT" default:"10s"`
	NatsUrl        string        `envconfig:"REGISTRY_NATS_URL" default:"nats://localhost:4222"`
	JwtSecret      string        `envconfig:"REGISTRY_JWT_SECRET" required:"true"`
	TokenDuration  time.Duration `envconfig:"REGISTRY_TOKEN_DURATION" default:"10h"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
