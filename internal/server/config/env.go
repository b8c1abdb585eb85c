package config

import (
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables read for them,
// in order of preference.
var envBindings = map[string][]string{
	"endpoint_addr_http":             {"MOODLOG_HTTP_ADDR"},
	"endpoint_addr_grpc":             {"MOODLOG_GRPC_ADDR"},
	"database_dsn":                   {"MOODLOG_DATABASE_DSN", "DATABASE_URL"},
	"secret_key":                     {"MOODLOG_SECRET_KEY"},
	"access_token_validity_duration": {"MOODLOG_ACCESS_TOKEN_VALIDITY"},
	"openai_base_url":                {"MOODLOG_OPENAI_BASE_URL"},
	"openai_api_key":                 {"MOODLOG_OPENAI_API_KEY", "OPENAI_API_KEY"},
	"openai_model":                   {"MOODLOG_OPENAI_MODEL"},
	"llm_timeout":                    {"MOODLOG_LLM_TIMEOUT"},
	"timezone":                       {"MOODLOG_TIMEZONE"},
	"week_start":                     {"MOODLOG_WEEK_START"},
	"log_level":                      {"MOODLOG_LOG_LEVEL"},
}

// parseEnv overlays values found in the process environment.
func parseEnv(config *Config) {
	v := viper.New()
	for key, names := range envBindings {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}
	applyViper(config, v)
}

func applyViper(config *Config, v *viper.Viper) {
	fields := map[string]*string{
		"endpoint_addr_http": &config.EndpointAddrHTTP,
		"endpoint_addr_grpc": &config.EndpointAddrGRPC,
		"database_dsn":       &config.DatabaseDSN,
		"secret_key":         &config.SecretKey,
		"openai_base_url":    &config.OpenAIBaseURL,
		"openai_api_key":     &config.OpenAIAPIKey,
		"openai_model":       &config.OpenAIModel,
		"timezone":           &config.Timezone,
		"week_start":         &config.WeekStart,
		"log_level":          &config.LogLevel,
	}
	for key, dst := range fields {
		if v.IsSet(key) {
			setString(dst, v.GetString(key))
		}
	}

	if v.IsSet("access_token_validity_duration") {
		if d := v.GetDuration("access_token_validity_duration"); d != 0 {
			config.AccessTokenValidityDuration = d
		}
	}
	if v.IsSet("llm_timeout") {
		if d := v.GetDuration("llm_timeout"); d != 0 {
			config.LLMTimeout = d
		}
	}
}
