package smtp

import (
	"net"
	"strconv"
)

// Config holds SMTP provider configuration. Defaults target Gmail with STARTTLS.
// Only STARTTLS or plain ports are supported; implicit TLS (465) is not.
type Config struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	PoolSize int    `env:"SMTP_POOL_SIZE" envDefault:"4"`
}

// Addr returns the host:port pair of the SMTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
