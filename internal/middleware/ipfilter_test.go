package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func runIPFilter(allowed []string, remoteAddr, forwarded string) int {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/ui", nil)
	c.Request.RemoteAddr = remoteAddr
	if forwarded != "" {
		c.Request.Header.Set("X-Forwarded-For", forwarded)
	}

	IPFilterMiddleware(allowed)(c)
	return w.Code
}

func TestIPFilterLoopbackAllowed(t *testing.T) {
	if code := runIPFilter(LocalNetworks, "127.0.0.1:1234", ""); code == 403 {
		t.Error("Expected loopback to be allowed")
	}
	if code := runIPFilter(LocalNetworks, "[::1]:1234", ""); code == 403 {
		t.Error("Expected IPv6 loopback to be allowed")
	}
}

func TestIPFilterOutsideBlocked(t *testing.T) {
	if code := runIPFilter(LocalNetworks, "192.168.1.100:1234", ""); code != 403 {
		t.Errorf("Expected 403 for non-local IP, got %d", code)
	}
}

func TestIPFilterForwardedFor(t *testing.T) {
	if code := runIPFilter([]string{"10.0.0.0/8"}, "127.0.0.1:1234", "10.1.2.3, 127.0.0.1"); code == 403 {
		t.Error("Expected forwarded client in range to be allowed")
	}
}

func TestIPFilterEmptyAllowsAll(t *testing.T) {
	if code := runIPFilter(nil, "203.0.113.9:1234", ""); code == 403 {
		t.Error("Expected empty allowlist to allow everyone")
	}
	if code := runIPFilter([]string{"not-a-cidr"}, "203.0.113.9:1234", ""); code == 403 {
		t.Error("Expected invalid ranges to be ignored")
	}
}

func TestIPFilterUnparseableClient(t *testing.T) {
	if code := runIPFilter(LocalNetworks, "garbage", ""); code != 403 {
		t.Errorf("Expected 403 for unparseable client, got %d", code)
	}
}
