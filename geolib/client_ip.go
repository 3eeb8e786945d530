package geolib

import (
	"net/http"
	"strings"
)

const (
	HeaderRealIP       = "X-Real-IP"
	HeaderForwardedFor = "X-Forwarded-For"

	// UnknownClientIP is returned by DetectClientIP if request has no
	// proxy headers at all.
	UnknownClientIP = "Unknown"
)

// DetectClientIP returns an IP address of the client as reported by
// reverse proxy headers. X-Real-IP has a priority, then the first entry
// of X-Forwarded-For list.
//
// Values are taken as is: these headers are client-controlled so it is
// up to a reverse proxy in front of the service to overwrite them.
func DetectClientIP(headers http.Header) string {
	if values := headers.Values(HeaderRealIP); len(values) > 0 {
		return values[0]
	}

	if values := headers.Values(HeaderForwardedFor); len(values) > 0 {
		return strings.TrimSpace(strings.SplitN(values[0], ",", 2)[0])
	}

	return UnknownClientIP
}
