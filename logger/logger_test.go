package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "info", Format: "console", Output: "stderr"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "login", "status", 200, "dangling")
	if m["op"] != "login" {
		t.Errorf("expected op=login, got %v", m["op"])
	}
	if m["status"] != 200 {
		t.Errorf("expected status=200, got %v", m["status"])
	}
	if _, ok := m["dangling"]; ok {
		t.Error("dangling key without value should be dropped")
	}
}

func TestWithComponent(t *testing.T) {
	log := NewDefault("test")
	tagged := log.WithComponent("verifier")
	if tagged == log {
		t.Fatal("WithComponent should return a new logger")
	}
	// Must not panic.
	tagged.Info("component log")
}
