package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultCollectionSearchURL is the collection search endpoint used when
// VTEX_COLLECTION_SEARCH_URL is not set.
const DefaultCollectionSearchURL = "https://iamtechiepartneruae.vtexcommercestable.com.br/api/catalog_system/pvt/collection/search"

type Config struct {
	Environment   string
	Server        ServerConfig
	Upstream      UpstreamConfig
	FanOut        FanOutConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port            int           `validate:"min=1,max=65535"`
	CORSOrigins     []string      `validate:"min=1"`
	ShutdownTimeout time.Duration `validate:"gte=0"`
	LogLevel        slog.Level
}

type UpstreamConfig struct {
	BaseURL             string        `validate:"required,url"`
	AppKey              string        `validate:"required"`
	AppToken            string        `validate:"required"`
	AccountName         string        `validate:"required"`
	CollectionSearchURL string        `validate:"required,url"`
	Timeout             time.Duration `validate:"gte=0"`
}

type FanOutConfig struct {
	Limit int `validate:"gte=0"`
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

// envNames maps validated struct fields back to the variables that feed them.
var envNames = map[string]string{
	"Config.Server.Port":                  "PORT",
	"Config.Server.CORSOrigins":           "GATEWAY_CORS_ORIGINS",
	"Config.Server.ShutdownTimeout":       "GATEWAY_SHUTDOWN_TIMEOUT",
	"Config.Upstream.BaseURL":             "VTEX_API_URL",
	"Config.Upstream.AppKey":              "VTEX_API_APP_KEY",
	"Config.Upstream.AppToken":            "VTEX_API_APP_TOKEN",
	"Config.Upstream.AccountName":         "VTEX_ACCOUNT_NAME",
	"Config.Upstream.CollectionSearchURL": "VTEX_COLLECTION_SEARCH_URL",
	"Config.Upstream.Timeout":             "GATEWAY_UPSTREAM_TIMEOUT",
	"Config.FanOut.Limit":                 "GATEWAY_FANOUT_LIMIT",
}

// Load reads the gateway configuration from the environment. It fails when the
// upstream URL or credentials are missing.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("gateway_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("port", 3000)
	v.SetDefault("vtex_api_url", "")
	v.SetDefault("vtex_api_app_key", "")
	v.SetDefault("vtex_api_app_token", "")
	v.SetDefault("vtex_account_name", "iamtechiepartneruae")
	v.SetDefault("vtex_collection_search_url", DefaultCollectionSearchURL)
	v.SetDefault("gateway_log_level", "info")
	v.SetDefault("gateway_upstream_timeout", "0s")
	v.SetDefault("gateway_fanout_limit", 0)
	v.SetDefault("gateway_cors_origins", "*")
	v.SetDefault("gateway_shutdown_timeout", "10s")
	v.SetDefault("gateway_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "vtex-gateway")
	v.SetDefault("gateway_version", "dev")
	v.SetDefault("gateway_otel_sampling_ratio", 1.0)
	v.SetDefault("gateway_otel_metrics_console", false)

	logLevel, err := parseLogLevel(v.GetString("gateway_log_level"))
	if err != nil {
		return Config{}, err
	}

	samplingRatio := v.GetFloat64("gateway_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "vtex-gateway"
	}
	serviceVersion := strings.TrimSpace(v.GetString("gateway_version"))
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	metricsConsole := v.GetBool("gateway_otel_metrics_console")

	cfg := Config{
		Environment: resolveEnvironment(v),
		Server: ServerConfig{
			Port:            v.GetInt("port"),
			CORSOrigins:     splitList(v.GetString("gateway_cors_origins")),
			ShutdownTimeout: v.GetDuration("gateway_shutdown_timeout"),
			LogLevel:        logLevel,
		},
		Upstream: UpstreamConfig{
			BaseURL:             strings.TrimRight(strings.TrimSpace(v.GetString("vtex_api_url")), "/"),
			AppKey:              strings.TrimSpace(v.GetString("vtex_api_app_key")),
			AppToken:            strings.TrimSpace(v.GetString("vtex_api_app_token")),
			AccountName:         strings.Trim(strings.TrimSpace(v.GetString("vtex_account_name")), "/"),
			CollectionSearchURL: strings.TrimSpace(v.GetString("vtex_collection_search_url")),
			Timeout:             v.GetDuration("gateway_upstream_timeout"),
		},
		FanOut: FanOutConfig{
			Limit: v.GetInt("gateway_fanout_limit"),
		},
		Observability: ObservabilityConfig{
			Enabled:           v.GetBool("gateway_otel_enabled") || otlpEndpoint != "" || metricsConsole,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
	}

	if cfg.Upstream.CollectionSearchURL == "" {
		cfg.Upstream.CollectionSearchURL = DefaultCollectionSearchURL
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	var missing, invalid []string
	for _, fieldErr := range fieldErrs {
		name := envNames[fieldErr.Namespace()]
		if name == "" {
			name = fieldErr.Namespace()
		}
		if fieldErr.Tag() == "required" {
			missing = append(missing, name)
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s)", name, fieldErr.Tag()))
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid GATEWAY_LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pair := strings.SplitN(part, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.TrimSpace(pair[0])
		value := strings.TrimSpace(pair[1])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"gateway_env", "app_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
