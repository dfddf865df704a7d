package ratelimit_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/stemboard/internal/app/system/ratelimit"
	"github.com/dalemusser/stemboard/internal/testutil"
)

var epoch = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func TestAllow_WindowLimit(t *testing.T) {
	clk := testutil.NewFakeClock(epoch)
	l := ratelimit.New(2, time.Minute, clk)
	defer l.Close()

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if l.Allow("a") {
		t.Error("third request should be limited")
	}
	if !l.Allow("b") {
		t.Error("other keys have their own window")
	}
	if l.Remaining("a") != 0 || l.Remaining("b") != 1 {
		t.Errorf("remaining a=%d b=%d", l.Remaining("a"), l.Remaining("b"))
	}

	clk.Advance(time.Minute + time.Second)
	if !l.Allow("a") {
		t.Error("new window should allow again")
	}
}

func TestReset(t *testing.T) {
	l := ratelimit.New(1, time.Hour, testutil.NewFakeClock(epoch))
	defer l.Close()

	l.Allow("k")
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("reset key should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		realIP string
		remote string
		want   string
	}{
		{"forwarded", "203.0.113.5, 10.0.0.1", "", "10.0.0.1:1234", "203.0.113.5"},
		{"real ip", "", "198.51.100.7", "10.0.0.1:1234", "198.51.100.7"},
		{"remote", "", "", "192.0.2.1:5555", "192.0.2.1"},
		{"remote no port", "", "", "192.0.2.1", "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/contact", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ratelimit.ClientIP(req); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContactLimiter_PerEmail(t *testing.T) {
	cl := ratelimit.NewContactLimiter(1, time.Minute, testutil.NewFakeClock(epoch))
	defer cl.Close()

	r1 := httptest.NewRequest("POST", "/contact", nil)
	r1.RemoteAddr = "192.0.2.1:1000"
	r2 := httptest.NewRequest("POST", "/contact", nil)
	r2.RemoteAddr = "192.0.2.2:1000"

	if ok, _ := cl.Check(r1, "Meron@Email.com"); !ok {
		t.Fatal("first submission should pass")
	}
	ok, reason := cl.Check(r2, "meron@email.com ")
	if ok {
		t.Error("same email from another IP should be limited")
	}
	if reason == "" {
		t.Error("expected a reason")
	}
}
