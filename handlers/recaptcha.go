// File: handlers/recaptcha.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"haulify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaVerifier validates tokens against Google's siteverify endpoint.
// With an empty secret it lets every request through, which keeps local
// development and tests working without real tokens.
type RecaptchaVerifier struct {
	Secret string
	Client *http.Client
}

// NewRecaptchaVerifier builds a verifier for the given secret.
func NewRecaptchaVerifier(secret string) *RecaptchaVerifier {
	return &RecaptchaVerifier{Secret: secret, Client: http.DefaultClient}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks one token; a verification transport failure counts as
// failure.
func (v *RecaptchaVerifier) Verify(c *gin.Context, token string) bool {
	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)
	form.Set("remoteip", c.ClientIP())

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost,
		recaptchaVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		utils.GetLogger().Warn("recaptcha verification request failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	var verdict siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return false
	}
	return verdict.Success
}

// Middleware guards an endpoint with a token check. The token travels in
// the X-Recaptcha-Token header.
func (v *RecaptchaVerifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v.Secret == "" {
			c.Next()
			return
		}
		token := c.GetHeader("X-Recaptcha-Token")
		if token == "" || !v.Verify(c, token) {
			c.JSON(http.StatusForbidden, gin.H{"error": "recaptcha verification failed"})
			c.Abort()
			return
		}
		c.Next()
	}
}
