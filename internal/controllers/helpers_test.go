// internal/controllers/helpers_test.go
package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded-for single hop",
			xff:        "198.51.100.4",
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded-for multi hop takes first valid",
			xff:        "198.51.100.4, 10.0.0.2, 10.0.0.3",
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded-for garbage skipped",
			xff:        "unknown, 198.51.100.4",
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded-for all garbage falls through",
			xff:        "unknown, not-an-ip",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "real-ip fallback",
			realIP:     "198.51.100.9",
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.9",
		},
		{
			name:       "invalid real-ip skipped",
			realIP:     "nope",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 forwarded-for",
			xff:        "2001:db8::1",
			remoteAddr: "10.0.0.1:80",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/v1/auth/register", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}
