package tui

import (
	"bufio"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join(home, ".tetris", "host_key"); path != want {
		t.Errorf("path = %q, expected %q", path, want)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(SSHServerConfig{Address: "127.0.0.1:0", HostKeyPath: keyPath}, quietLogger())
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", srv.config.TickRate)
	}
}

func TestSSHServerServeAndShutdown(t *testing.T) {
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
	}, quietLogger())
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	served := make(chan error, 1)
	go func() { served <- srv.Serve(l) }()

	conn, err := net.DialTimeout("tcp", l.Addr().String(), 2*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	banner, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		t.Fatalf("reading banner: %v", err)
	}
	if !strings.HasPrefix(banner, "SSH-2.0-") {
		t.Errorf("banner = %q, expected an SSH-2.0 version line", banner)
	}
	conn.Close()

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
	select {
	case err := <-served:
		if err != nil {
			t.Errorf("Serve() = %v after shutdown, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after shutdown")
	}
}
