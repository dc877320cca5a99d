package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded list uses originating client",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1, 10.0.0.2"},
			remoteAddr: "10.0.0.2:443",
			want:       "203.0.113.7",
		},
		{
			name:       "real ip beats remote addr",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.9 "},
			remoteAddr: "10.0.0.2:443",
			want:       "203.0.113.9",
		},
		{
			name:       "remote addr port stripped",
			remoteAddr: "192.0.2.4:51234",
			want:       "192.0.2.4",
		},
		{
			name:       "remote addr without port passes through",
			remoteAddr: "192.0.2.4",
			want:       "192.0.2.4",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}
