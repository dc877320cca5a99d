// File: services/admin/auth.go
package admin

import (
	"fmt"
	"time"

	"haulify/config"
	"haulify/utils"

	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// Authenticate checks the back-office credentials and issues a JWT on
// success. The admin account is configured, not stored: a single operator
// email plus a bcrypt password hash.
func Authenticate(email, password string) (string, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return "", fmt.Errorf("admin access is not configured")
	}
	if email != cfg.AdminEmail {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken("admin", email, adminTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}
	return token, nil
}
