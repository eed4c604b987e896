package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"contabilidad_orquestador/internal/usecase"

	"github.com/spf13/viper"
)

const (
	BackendHTTP     = "http"
	BackendDynamoDB = "dynamodb"
)

// Config is built once at startup and passed by reference to the components
// that need it. Nothing reads the environment after Load returns.
type Config struct {
	Port             string
	GinMode          string
	LogLevel         string
	ReportTopDefault int

	Sources  SourcesConfig
	DynamoDB DynamoDBConfig
}

// SourcesConfig describes where the three upstream collections live.
type SourcesConfig struct {
	Backend       string
	BaseURL       string
	InvoicesPath  string
	PaymentsPath  string
	CustomersPath string
	Timeout       time.Duration
}

// DynamoDBConfig is used when Sources.Backend is "dynamodb".
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// hence the "local" defaults.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	InvoicesTable   string
	PaymentsTable   string
	CustomersTable  string
}

// Load reads defaults, an optional contabilidad.yml and the environment, in
// increasing order of precedence. Keys map to env vars by upper-casing and
// replacing "." with "_" (sources.base_url => SOURCES_BASE_URL).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("contabilidad")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/contabilidad")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		GinMode:          v.GetString("gin_mode"),
		LogLevel:         v.GetString("log_level"),
		ReportTopDefault: v.GetInt("report.top_default"),
		Sources: SourcesConfig{
			Backend:       strings.ToLower(strings.TrimSpace(v.GetString("sources.backend"))),
			BaseURL:       strings.TrimRight(strings.TrimSpace(v.GetString("sources.base_url")), "/"),
			InvoicesPath:  v.GetString("sources.invoices_path"),
			PaymentsPath:  v.GetString("sources.payments_path"),
			CustomersPath: v.GetString("sources.customers_path"),
			Timeout:       v.GetDuration("sources.timeout"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("aws.region"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
			Endpoint:        v.GetString("dynamodb.endpoint"),
			InvoicesTable:   v.GetString("invoices_table"),
			PaymentsTable:   v.GetString("payments_table"),
			CustomersTable:  v.GetString("customers_table"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("report.top_default", usecase.DefaultTopDelinquents)

	v.SetDefault("sources.backend", BackendHTTP)
	v.SetDefault("sources.base_url", "https://programacionweb2examen3-production.up.railway.app/api")
	v.SetDefault("sources.invoices_path", "/Facturas/Listar")
	v.SetDefault("sources.payments_path", "/Pagos/Listar")
	v.SetDefault("sources.customers_path", "/Clientes/Listar")
	v.SetDefault("sources.timeout", 30*time.Second)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("invoices_table", "facturas")
	v.SetDefault("payments_table", "pagos")
	v.SetDefault("customers_table", "clientes")
}

func (c *Config) Validate() error {
	switch c.Sources.Backend {
	case BackendHTTP:
		u, err := url.Parse(c.Sources.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("SOURCES_BASE_URL must be an absolute http(s) url, got %q", c.Sources.BaseURL)
		}
	case BackendDynamoDB:
		if c.DynamoDB.InvoicesTable == "" || c.DynamoDB.PaymentsTable == "" || c.DynamoDB.CustomersTable == "" {
			return errors.New("dynamodb backend requires INVOICES_TABLE, PAYMENTS_TABLE and CUSTOMERS_TABLE")
		}
	default:
		return fmt.Errorf("unknown SOURCES_BACKEND %q", c.Sources.Backend)
	}
	if c.Sources.Timeout <= 0 {
		return fmt.Errorf("SOURCES_TIMEOUT must be positive, got %s", c.Sources.Timeout)
	}
	if c.ReportTopDefault < 1 || c.ReportTopDefault > usecase.MaxTopDelinquents {
		return fmt.Errorf("REPORT_TOP_DEFAULT must be between 1 and %d", usecase.MaxTopDelinquents)
	}
	return nil
}

func (s SourcesConfig) InvoicesURL() string  { return s.BaseURL + s.InvoicesPath }
func (s SourcesConfig) PaymentsURL() string  { return s.BaseURL + s.PaymentsPath }
func (s SourcesConfig) CustomersURL() string { return s.BaseURL + s.CustomersPath }
