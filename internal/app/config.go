package app

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultApiUrl       = "https://api.airtable.com/v0"
	defaultTable        = "Generation"
	defaultDownloadsDir = "./downloads"
	defaultMaxRecords   = 1000
	defaultDelayMs      = 100
)

type Config struct {
	BaseId       string
	ApiKey       string
	ApiUrl       string
	Table        string
	DownloadsDir string
	MaxRecords   int
	// pause inserted after every successful remote mutation
	MutationDelay time.Duration
}

func loadConfig() (Config, error) {
	return loadConfigFile("config.json")
}

func loadConfigFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("apiUrl", defaultApiUrl)
	v.SetDefault("table", defaultTable)
	v.SetDefault("downloadsDir", defaultDownloadsDir)
	v.SetDefault("maxRecords", defaultMaxRecords)
	v.SetDefault("mutationDelayMs", defaultDelayMs)

	err := v.ReadInConfig()
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	for _, key := range []string{"baseId", "apiKey"} {
		if v.GetString(key) == "" {
			return Config{}, fmt.Errorf("config file %s is missing required key %q", path, key)
		}
	}

	cfg := Config{
		BaseId:        v.GetString("baseId"),
		ApiKey:        v.GetString("apiKey"),
		ApiUrl:        v.GetString("apiUrl"),
		Table:         v.GetString("table"),
		DownloadsDir:  v.GetString("downloadsDir"),
		MaxRecords:    v.GetInt("maxRecords"),
		MutationDelay: time.Duration(v.GetInt("mutationDelayMs")) * time.Millisecond,
	}

	return cfg, nil
}
