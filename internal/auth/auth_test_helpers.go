package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

// GetAccessToken signs a seeded user in and returns their access token.
func GetAccessToken(t *testing.T, db *database.DBinstanceStruct, email string, password string) (string, error) {
	t.Helper()

	handler := NewLocalAuthHandler(db)
	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	token, ok := resp["access_token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("no access_token in login response")
	}
	return token, nil
}
