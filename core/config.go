package core

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is the characterhub base configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Upstream Upstream `yaml:"upstream"`
	Auth     Auth     `yaml:"auth"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

// Upstream locates the external service of record. APIURL is the base every
// resource path is appended to; InternalAPIURL is the self-referential base
// used when server-rendered callers talk to their own proxy.
type Upstream struct {
	APIURL         string `yaml:"apiUrl"`
	InternalAPIURL string `yaml:"internalApiUrl"`
}

type Auth struct {
	ProviderURL string `yaml:"providerUrl"`
	CookieName  string `yaml:"cookieName"`
}

// Load loads config from given path, then applies environment overrides.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	if v := os.Getenv("API_URL"); v != "" {
		c.Upstream.APIURL = v
	}
	if v := os.Getenv("INTERNAL_API_URL"); v != "" {
		c.Upstream.InternalAPIURL = v
	}

	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "ch-session"
	}

	return nil
}
