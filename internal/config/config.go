package config

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

type Config struct {
	// ComponentDatabase is an optional SQLite file whose components extend
	// the built-in database.
	ComponentDatabase string `json:"componentDatabase"`
	RequestTimeout    int    `json:"requestTimeout"` // milliseconds
	CompletionLimit   int    `json:"completionLimit"`
	FetchMetadata     bool   `json:"fetchMetadata"`
	CtanURL           string `json:"ctanUrl"`
	LoadIncludes      bool   `json:"loadIncludes"`
}

var defaultConfig = Config{
	RequestTimeout:  2000,
	CompletionLimit: 100,
	FetchMetadata:   true,
	CtanURL:         "https://ctan.org",
	LoadIncludes:    true,
}

func Default() Config {
	return defaultConfig
}

func Load(v any) (Config, error) {
	cfg := defaultConfig

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in src will overwrite.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, nil
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := defaultConfig

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// Timeout bounds a single request. Zero or negative values disable it.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeout) * time.Millisecond
}
