package geolib

import (
	"errors"
	"net"
	"net/http"
)

func (h httpHandler) handleLookup(w http.ResponseWriter, req *http.Request) {
	ipText := DetectClientIP(req.Header)

	if values, ok := req.URL.Query()["ip"]; ok && len(values) > 0 {
		ipText = values[0]
	}

	ipAddr := net.ParseIP(ipText)
	if ipAddr == nil {
		h.sendError(w, nil, ErrInvalidIP.Error(), http.StatusBadRequest)

		return
	}

	resolved, err := h.resolver.Resolve(ipAddr)

	switch {
	case errors.Is(err, ErrResolverShutdown):
		h.sendError(w, err, "Service is shutting down", http.StatusServiceUnavailable)
	case err != nil:
		h.sendError(w, err, "Cannot resolve IP address", http.StatusBadRequest)
	default:
		h.encodeJSON(w, resolved)
	}
}

func (h httpHandler) handleIP(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(DetectClientIP(req.Header))) // nolint: errcheck
}

func (h httpHandler) handleStats(w http.ResponseWriter, req *http.Request) {
	response := struct {
		Results []*UsageStats `json:"results"`
	}{
		Results: h.resolver.UsageStats(),
	}

	h.encodeJSON(w, response)
}
