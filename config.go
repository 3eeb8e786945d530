package main

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/hjson/hjson-go/v4"
	"github.com/spf13/afero"
)

const (
	DefaultListen          = "0.0.0.0:8085"
	DefaultCityDatabase    = "./data/GeoLite2-City.mmdb"
	DefaultASNDatabase     = "./data/GeoLite2-ASN.mmdb"
	DefaultShutdownTimeout = 10 * time.Second

	// DisabledDatabase as a value of asn_database turns ASN lookups off.
	DisabledDatabase = "-"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	if dur < 0 {
		return fmt.Errorf("duration should be positive: %s", vv)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen          string          `json:"listen"`
	CityDatabase    string          `json:"city_database"`
	ASNDatabase     string          `json:"asn_database"`
	StaticDirectory string          `json:"static_directory"`
	WorkerPoolSize  uint            `json:"worker_pool_size"`
	CacheSize       uint            `json:"cache_size"`
	CacheTTL        duration        `json:"cache_ttl"`
	ShutdownTimeout duration        `json:"shutdown_timeout"`
	BasicAuth       configBasicAuth `json:"basic_auth"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetCityDatabase() string {
	if c.CityDatabase != "" {
		return c.CityDatabase
	}

	return DefaultCityDatabase
}

// GetASNDatabase returns an empty string if ASN database is disabled.
func (c config) GetASNDatabase() string {
	switch c.ASNDatabase {
	case "":
		return DefaultASNDatabase
	case DisabledDatabase:
		return ""
	}

	return c.ASNDatabase
}

func (c config) GetStaticDirectory() string {
	return c.StaticDirectory
}

func (c config) GetWorkerPoolSize() int {
	return int(c.WorkerPoolSize)
}

func (c config) GetCacheSize() uint {
	return c.CacheSize
}

func (c config) GetCacheTTL() time.Duration {
	return c.CacheTTL.Duration
}

func (c config) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout.Duration == 0 {
		return DefaultShutdownTimeout
	}

	return c.ShutdownTimeout.Duration
}

type configBasicAuth struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func (c configBasicAuth) Enabled() bool {
	return c.User != "" || c.Password != ""
}

// parseConfig reads HJSON config from a given path. An empty path means
// that all defaults are used.
func parseConfig(fs afero.Fs, path string) (*config, error) {
	conf := config{}

	if path != "" {
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("cannot read file: %w", err)
		}

		rawMap := map[string]interface{}{}

		if err := hjson.Unmarshal(content, &rawMap); err != nil {
			return nil, fmt.Errorf("cannot parse json: %w", err)
		}

		rawBytes, _ := json.Marshal(rawMap)

		if err := json.Unmarshal(rawBytes, &conf); err != nil {
			return nil, fmt.Errorf("incorrect config: %w", err)
		}
	}

	if _, _, err := net.SplitHostPort(conf.GetListen()); err != nil {
		return nil, fmt.Errorf("incorrect host:port for listen: %w", err)
	}

	if conf.BasicAuth.Enabled() && (conf.BasicAuth.User == "" || conf.BasicAuth.Password == "") {
		return nil, fmt.Errorf("basic auth requires both user and password")
	}

	return &conf, nil
}
