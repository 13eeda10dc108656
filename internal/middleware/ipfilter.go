package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// LocalNetworks are the loopback ranges the server accepts by default
var LocalNetworks = []string{"127.0.0.0/8", "::1/128"}

// IPFilterMiddleware only lets through clients inside one of the allowed
// CIDR ranges. Invalid ranges are ignored; an empty list allows everyone.
func IPFilterMiddleware(allowed []string) gin.HandlerFunc {
	allowedCIDRs := make([]*net.IPNet, 0, len(allowed))
	for _, cidr := range allowed {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err == nil {
			allowedCIDRs = append(allowedCIDRs, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(allowedCIDRs) == 0 {
			c.Next()
			return
		}

		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		for _, ipNet := range allowedCIDRs {
			if ipNet.Contains(clientIP) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// extractIP extracts the client IP from the request
// Handles X-Forwarded-For header if behind proxy
func extractIP(c *gin.Context) net.IP {
	// Check X-Forwarded-For header (if behind proxy)
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP in the list
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			return net.ParseIP(ip)
		}
	}

	// Fall back to RemoteAddr
	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		// If no port, use the whole string
		host = c.Request.RemoteAddr
	}

	return net.ParseIP(host)
}
