package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StorageBackend     string `env:"STORAGE_BACKEND" envDefault:"dynamodb"`
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"` // e.g. http://dynamodb:8000
	QuoteRequestsTable string `env:"QUOTE_REQUESTS_TABLE" envDefault:"quote_requests"`
	OrdersTable        string `env:"ORDERS_TABLE" envDefault:"orders"`

	RequestExpiryWindow time.Duration `env:"REQUEST_EXPIRY_WINDOW" envDefault:"168h"`
	QuoteGeneratorSeed  uint64        `env:"QUOTE_GENERATOR_SEED" envDefault:"1"`
	CompleteOnPayment   bool          `env:"COMPLETE_ON_PAYMENT" envDefault:"true"`
	VendorDirectoryFile string        `env:"VENDOR_DIRECTORY_FILE"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.StorageBackend {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.RequestExpiryWindow <= 0 {
		return fmt.Errorf("invalid REQUEST_EXPIRY_WINDOW %s", c.RequestExpiryWindow)
	}
	return nil
}
