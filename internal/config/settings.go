package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ecobot"`

	// VerificationToken is the secret echoed back by Messenger during the subscription handshake.
	VerificationToken string `env:"VERIFICATION_TOKEN"`
	// PageAccessToken authenticates calls to the Send API.
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`
	// AppSecret enables X-Hub-Signature-256 validation of inbound events when set.
	AppSecret string `env:"APP_SECRET"`

	GraphAPIURL               string        `env:"GRAPH_API_URL" envDefault:"https://graph.facebook.com/v2.6"`
	SendTimeout               time.Duration `env:"SEND_TIMEOUT" envDefault:"10s"`
	IntentConfidenceThreshold float64       `env:"INTENT_CONFIDENCE_THRESHOLD" envDefault:"0.8"`
	// RedeliveryTTL suppresses duplicate replies to the same message id; zero disables it.
	RedeliveryTTL time.Duration `env:"REDELIVERY_TTL"`
}
