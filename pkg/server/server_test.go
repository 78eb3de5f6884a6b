package server

import (
	"strings"
	"testing"

	"github.com/geoserve/gmapsmcp/pkg/gmaps"
)

func TestNewServer(t *testing.T) {
	s, err := NewServer(gmaps.NewClient("test-key"))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if s == nil {
		t.Fatal("NewServer() returned nil server")
	}
}

func TestNewServerNilProvider(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("NewServer(nil) should fail")
	}
}

func TestRunUnknownTransport(t *testing.T) {
	s, err := NewServer(gmaps.NewClient("test-key"))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	err = s.Run("streamable-http", "")
	if err == nil {
		t.Fatal("Run() with unknown transport should fail")
	}
	if !strings.Contains(err.Error(), "streamable-http") {
		t.Errorf("error %q does not name the bad transport", err)
	}
}
