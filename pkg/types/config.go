package types

import (
	"encoding/json"
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"socclient/internal/protocol"
)

const (
	TransportTCP       = "tcp"
	TransportWebSocket = "ws"
)

// Config holds the client's connection and identity settings.
type Config struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Transport  string `json:"transport"`
	URL        string `json:"url,omitempty"` // websocket endpoint; overrides Host/Port
	Nickname   string `json:"nickname"`
	Password   string `json:"password,omitempty"`
	MaxPlayers int    `json:"max_players"`
	LogPrefix  string `json:"log_prefix,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Host:       "localhost",
		Port:       8880,
		Transport:  TransportTCP,
		MaxPlayers: 4,
	}
}

// LoadConfig reads a JSON config file on top of DefaultConfig. Missing
// keys keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read client config")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal client config")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Nickname == "" {
		return errors.New("nickname is required")
	}
	if !protocol.IsSingleLineAndSafe(c.Nickname, false) {
		return errors.Errorf("nickname %q is not a safe protocol field", c.Nickname)
	}
	switch c.Transport {
	case TransportTCP:
		if c.Port <= 0 || c.Port > 65535 {
			return errors.Errorf("port %d out of range", c.Port)
		}
	case TransportWebSocket:
		if c.URL == "" && (c.Port <= 0 || c.Port > 65535) {
			return errors.Errorf("port %d out of range", c.Port)
		}
	default:
		return errors.Errorf("unknown transport %q", c.Transport)
	}
	if c.MaxPlayers != 4 && c.MaxPlayers != 6 {
		return errors.Errorf("max players must be 4 or 6, got %d", c.MaxPlayers)
	}
	return nil
}

// Addr is the host:port pair for TCP dialing.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// WebSocketURL returns URL, or one derived from Host/Port.
func (c Config) WebSocketURL() string {
	if c.URL != "" {
		return c.URL
	}
	return "ws://" + c.Addr() + "/ws"
}
