package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = keyPath

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if got := srv.Addr(); got != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected %q", got, "127.0.0.1:0")
	}
	if srv.scores == nil {
		t.Error("nil scores should fall back to an in-memory table")
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}
}
