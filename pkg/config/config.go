package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fintech]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Products holds the parameters used when a product is opened without
// explicit values, both from the console and over HTTP.
type Products struct {
	DefaultKind           string          `envconfig:"DEFAULT_KIND" default:"savings"`
	SavingsRate           decimal.Decimal `envconfig:"SAVINGS_RATE" default:"5"`
	CheckingRate          decimal.Decimal `envconfig:"CHECKING_RATE" default:"1"`
	OverdraftLimit        decimal.Decimal `envconfig:"OVERDRAFT_LIMIT" default:"50"`
	CertificateRate       decimal.Decimal `envconfig:"CERTIFICATE_RATE" default:"12"`
	CertificateTermMonths int             `envconfig:"CERTIFICATE_TERM_MONTHS" default:"12"`
	CreditLimit           decimal.Decimal `envconfig:"CREDIT_LIMIT" default:"500"`
	CreditCardRate        decimal.Decimal `envconfig:"CREDIT_CARD_RATE" default:"2"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Products  *Products  `envconfig:"PRODUCT"`
}
