package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/leadsite/backend/internal/model"
)

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func clientIP(r *http.Request, trustedProxies int) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && trustedProxies > 0 {
		parts := strings.Split(xff, ",")
		// The rightmost entry added by our infrastructure is at
		// index len(parts) - trustedProxies.
		idx := len(parts) - trustedProxies
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func clientInfo(r *http.Request, trustedProxies int) model.ClientInfo {
	return model.ClientInfo{
		IPAddress: truncate(clientIP(r, trustedProxies), 45),
		UserAgent: truncate(r.UserAgent(), 500),
		Referer:   r.Referer(),
		UTMSource: r.URL.Query().Get("utm_source"),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
