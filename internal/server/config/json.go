package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moodlog/internal/flagx"
	"github.com/dmitrijs2005/moodlog/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept both "90s" style strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	OpenAIBaseURL               string         `json:"openai_base_url"`
	OpenAIAPIKey                string         `json:"openai_api_key"`
	OpenAIModel                 string         `json:"openai_model"`
	LLMTimeout                  timex.Duration `json:"llm_timeout"`
	Timezone                    string         `json:"timezone"`
	WeekStart                   string         `json:"week_start"`
	LogLevel                    string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson loads the file given with -c / -config into config. Keys that
// are absent from the file leave the current values untouched. A file that
// cannot be read or decoded panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	setString(&config.OpenAIAPIKey, c.OpenAIAPIKey)
	setString(&config.OpenAIModel, c.OpenAIModel)
	setString(&config.Timezone, c.Timezone)
	setString(&config.WeekStart, c.WeekStart)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LLMTimeout.Duration != 0 {
		config.LLMTimeout = c.LLMTimeout.Duration
	}
}
