package audit

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// GetIPAddress extracts the originating client IP. The site runs behind
// CloudFront, so X-Forwarded-For may carry a comma separated chain and only
// the first hop is the visitor.
func GetIPAddress(c echo.Context) string {
	if ip := c.Request().Header.Get("X-Forwarded-For"); ip != "" {
		if idx := strings.IndexByte(ip, ','); idx >= 0 {
			ip = ip[:idx]
		}
		return strings.TrimSpace(ip)
	}

	if ip := c.Request().Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	return c.RealIP()
}

// GetRequestContext extracts the IP and user agent for an audit entry.
func GetRequestContext(c echo.Context) (ipAddress, userAgent string) {
	return GetIPAddress(c), c.Request().UserAgent()
}
