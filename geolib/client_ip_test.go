package geolib_test

import (
	"net/http"
	"testing"

	"github.com/9seconds/geolocator/geolib"
	"github.com/stretchr/testify/assert"
)

func TestDetectClientIP(t *testing.T) {
	testData := []struct {
		name         string
		realIP       string
		forwardedFor string
		expected     string
	}{
		{
			name:     "real ip",
			realIP:   "1.2.3.4",
			expected: "1.2.3.4",
		},
		{
			name:         "forwarded for",
			forwardedFor: "5.6.7.8, 9.9.9.9",
			expected:     "5.6.7.8",
		},
		{
			name:         "forwarded for single",
			forwardedFor: "5.6.7.8",
			expected:     "5.6.7.8",
		},
		{
			name:         "forwarded for with spaces",
			forwardedFor: " 5.6.7.8 ,9.9.9.9",
			expected:     "5.6.7.8",
		},
		{
			name:         "both",
			realIP:       "1.2.3.4",
			forwardedFor: "5.6.7.8, 9.9.9.9",
			expected:     "1.2.3.4",
		},
		{
			name:     "none",
			expected: geolib.UnknownClientIP,
		},
	}

	for _, v := range testData {
		value := v

		t.Run(value.name, func(t *testing.T) {
			headers := http.Header{}

			if value.realIP != "" {
				headers.Set("x-real-ip", value.realIP)
			}

			if value.forwardedFor != "" {
				headers.Set("x-forwarded-for", value.forwardedFor)
			}

			assert.Equal(t, value.expected, geolib.DetectClientIP(headers))
		})
	}
}

func TestDetectClientIPDoesNotValidate(t *testing.T) {
	headers := http.Header{}

	headers.Set(geolib.HeaderRealIP, "not-an-ip")

	assert.Equal(t, "not-an-ip", geolib.DetectClientIP(headers))
	assert.Equal(t, "Unknown", geolib.UnknownClientIP)
}
