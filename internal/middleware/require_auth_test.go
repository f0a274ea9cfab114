package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/auth"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
)

func protectedEngine() *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(testDB), checkUserHandler)
	return r
}

// signToken builds a token outside the auth package so expiry, issuer and
// subject can each be wrong on purpose.
func signToken(t *testing.T, claims *jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(auth.SECRET_KEY))
	assert.NoError(t, err)
	return signed
}

func TestRequireAuth_Success(t *testing.T) {
	engine := protectedEngine()
	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec := callWithToken(t, engine, "/protected", token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
}

func TestRequireAuth_NoHeader(t *testing.T) {
	engine := protectedEngine()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	assert.Contains(t, body["error"], "authorization header")
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	engine := protectedEngine()

	rec := callWithToken(t, engine, "/protected", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	engine := protectedEngine()

	token := signToken(t, &jwt.RegisteredClaims{
		Issuer:    auth.JwtIssuer,
		Subject:   database.TestUserSeeker1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	})

	rec := callWithToken(t, engine, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Access token expired", body["error"])
}

func TestRequireAuth_WrongIssuer(t *testing.T) {
	engine := protectedEngine()

	token := signToken(t, &jwt.RegisteredClaims{
		Issuer:    "SomeOtherService",
		Subject:   database.TestUserSeeker1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	rec := callWithToken(t, engine, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token issuer", body["error"])
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	engine := protectedEngine()

	// Valid signature and issuer, but the subject points at nobody
	token := signToken(t, &jwt.RegisteredClaims{
		Issuer:    auth.JwtIssuer,
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	rec := callWithToken(t, engine, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not exist", body["error"])
}

func TestRequireAuth_TamperedSignature(t *testing.T) {
	engine := protectedEngine()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    auth.JwtIssuer,
		Subject:   database.TestUserSeeker1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	assert.NoError(t, err)

	rec := callWithToken(t, engine, "/protected", signed)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
