// Package config loads the process configuration from environment variables.
//
// Values are read once at startup with envconfig, validated, and then passed
// by value into the constructors that need them. Nothing here is mutated
// after Load returns.
package config

import (
	"time"

	"github.com/gabapcia/etiwatch/internal/pkg/validator"

	"github.com/gagliardetto/solana-go"
	"github.com/kelseyhightower/envconfig"
)

// Config is the root configuration of the etiwatch service.
type Config struct {
	Port             int    `envconfig:"PORT" default:"5000" validate:"gt=0,lte=65535"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"etiwatch" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	Telegram    Telegram    `envconfig:"TELEGRAM"`
	DexScreener DexScreener `envconfig:"DEXSCREENER"`
	Indicators  Indicators  `envconfig:"ETI"`
	Kafka       Kafka       `envconfig:"KAFKA"`
}

// Telegram holds the notification channel credentials.
type Telegram struct {
	BotToken  string        `envconfig:"BOT_TOKEN" validate:"required"`
	ChannelID string        `envconfig:"CHANNEL_ID" validate:"required"`
	APIURL    string        `envconfig:"API_URL" default:"https://api.telegram.org" validate:"url"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
}

// DexScreener holds the confirmation registry endpoints.
type DexScreener struct {
	OrdersURL string        `envconfig:"ORDERS_URL" default:"https://api.dexscreener.com/orders/v1/solana" validate:"url"`
	LinkURL   string        `envconfig:"LINK_URL" default:"https://dexscreener.com/solana" validate:"url"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
}

// Indicators holds the known ETI indicators and the scoring thresholds.
type Indicators struct {
	PaymentAmounts []int64  `envconfig:"PAYMENT_AMOUNTS" default:"2000000000,5000000000,10000000000" validate:"dive,gt=0"`
	ProgramIDs     []string `envconfig:"PROGRAM_IDS" validate:"dive,solana_pubkey"`
	KnownAddresses []string `envconfig:"KNOWN_ADDRESSES" validate:"dive,solana_pubkey"`
	Threshold      float64  `envconfig:"THRESHOLD" default:"0.5" validate:"gte=0"`
	HighConfidence float64  `envconfig:"HIGH_CONFIDENCE" default:"0.8" validate:"gtefield=Threshold"`
}

// Kafka holds the optional detection event sink. Publishing is disabled
// when Brokers is empty.
type Kafka struct {
	Brokers []string `envconfig:"BROKERS" validate:"dive,hostname_port"`
	Topic   string   `envconfig:"TOPIC" default:"eti.detections" validate:"required"`
}

// Enabled reports whether a Kafka sink was configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

// defaultProgramIDs are the programs whose invocation counts as ETI evidence
// when ETI_PROGRAM_IDS is unset.
func defaultProgramIDs() []string {
	return []string{solana.TokenMetadataProgramID.String()}
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Indicators.ProgramIDs == nil {
		cfg.Indicators.ProgramIDs = defaultProgramIDs()
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
