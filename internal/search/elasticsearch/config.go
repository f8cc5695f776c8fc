package elasticsearch

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Config contains Elasticsearch endpoint configuration.
// All fields map to go-elasticsearch client options:
//   - Host, Port, Scheme: rendered into Config.Addresses
//   - Username, Password: basic authentication, optional
type Config struct {
	Host     string `env:"ELASTICSEARCH_HOST"     envDefault:"localhost"`
	Port     int    `env:"ELASTICSEARCH_PORT"     envDefault:"9200"`
	Scheme   string `env:"ELASTICSEARCH_SCHEME"   envDefault:"http"`
	Username string `env:"ELASTICSEARCH_USERNAME"`
	Password string `env:"ELASTICSEARCH_PASSWORD"`
}

// Address renders the endpoint as scheme://host:port.
func (c Config) Address() string {
	return c.Scheme + "://" + net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks the endpoint settings.
func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("host cannot be empty")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", c.Scheme)
	}

	return nil
}
