package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenAddress(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"3000", ":3000"},
		{":8080", ":8080"},
		{"0.0.0.0:8080", "0.0.0.0:8080"},
		{"localhost:3000", "localhost:3000"},
	}

	for _, tt := range tests {
		cfg := &Configuration{Address: tt.address}
		assert.Equal(t, tt.want, cfg.ListenAddress(), "address %q", tt.address)
	}
}
