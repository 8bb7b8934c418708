package wazero

import (
	"testing"

	"github.com/recordbridge-dev/recordbridge-sdk/go/dispatch"
)

func TestDefaultAdapterConfig(t *testing.T) {
	cfg := defaultAdapterConfig()
	if cfg.ModuleName != "bridge_host" {
		t.Errorf("ModuleName = %q, want %q", cfg.ModuleName, "bridge_host")
	}
	if cfg.MaxRequestSize != dispatch.DefaultMaxRequestSize {
		t.Errorf("MaxRequestSize = %d, want %d", cfg.MaxRequestSize, dispatch.DefaultMaxRequestSize)
	}
}

func TestAdapterOptions(t *testing.T) {
	cfg := defaultAdapterConfig()
	WithModuleName("custom_host")(&cfg)
	WithMaxRequestSize(4096)(&cfg)

	if cfg.ModuleName != "custom_host" {
		t.Errorf("ModuleName = %q, want %q", cfg.ModuleName, "custom_host")
	}
	if cfg.MaxRequestSize != 4096 {
		t.Errorf("MaxRequestSize = %d, want 4096", cfg.MaxRequestSize)
	}
}

func TestPackUnpackPtrLen(t *testing.T) {
	tests := []struct {
		name   string
		ptr    uint32
		length uint32
	}{
		{"zero", 0, 0},
		{"typical", 1024, 256},
		{"max values", 0xFFFFFFFF, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := packPtrLen(tt.ptr, tt.length)
			ptr, length := unpackPtrLen(packed)
			if ptr != tt.ptr || length != tt.length {
				t.Errorf("round trip = (%d, %d), want (%d, %d)", ptr, length, tt.ptr, tt.length)
			}
		})
	}
}
