package types

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	base := DefaultConfig()
	base.Nickname = "alice"

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "no nickname", mutate: func(c *Config) { c.Nickname = "" }, wantErr: true},
		{name: "nickname with separator", mutate: func(c *Config) { c.Nickname = "a,b" }, wantErr: true},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "ws with url", mutate: func(c *Config) { c.Transport = TransportWebSocket; c.Port = 0; c.URL = "ws://h/ws" }},
		{name: "unknown transport", mutate: func(c *Config) { c.Transport = "udp" }, wantErr: true},
		{name: "six players", mutate: func(c *Config) { c.MaxPlayers = 6 }},
		{name: "five players", mutate: func(c *Config) { c.MaxPlayers = 5 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	if err := os.WriteFile(path, []byte(`{"nickname":"bob","transport":"ws"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Nickname != "bob" || c.Transport != TransportWebSocket || c.Port != 8880 || c.MaxPlayers != 4 {
		t.Errorf("config = %+v", c)
	}
	if got := c.WebSocketURL(); got != "ws://localhost:8880/ws" {
		t.Errorf("url = %q", got)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("missing file accepted")
	}
}
