package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		trustProxy bool
		want       string
	}{
		{"remote addr only", "10.0.0.1:4321", "", "", false, "10.0.0.1"},
		{"proxy headers ignored when untrusted", "10.0.0.1:4321", "1.2.3.4", "5.6.7.8", false, "10.0.0.1"},
		{"xff preferred when trusted", "10.0.0.1:4321", "1.2.3.4, 9.9.9.9", "5.6.7.8", true, "1.2.3.4"},
		{"x-real-ip fallback", "10.0.0.1:4321", "", "5.6.7.8", true, "5.6.7.8"},
		{"trusted but no headers", "10.0.0.1:4321", "", "", true, "10.0.0.1"},
		{"ipv6 remote addr", "[::1]:8080", "", "", false, "::1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xRealIP != "" {
				r.Header.Set("X-Real-IP", tc.xRealIP)
			}
			if got := ClientIP(r, tc.trustProxy); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"192.168.1.10", "10.0.0.0/8", " ", "not-an-ip"})

	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.10", true},
		{"192.168.1.11", false},
		{"10.1.2.3", true},
		{"11.0.0.1", false},
		{"garbage", false},
	}

	for _, tc := range tests {
		if got := m.Allow(tc.ip); got != tc.want {
			t.Errorf("Allow(%q) = %v, want %v", tc.ip, got, tc.want)
		}
	}

	if NewIPMatcher(nil).IsEmpty() != true {
		t.Error("empty list should produce empty matcher")
	}
	if m.IsEmpty() {
		t.Error("populated matcher reported empty")
	}
}
