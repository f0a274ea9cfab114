package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/auth"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if auth.SECRET_KEY == "" {
		auth.SECRET_KEY = "test-signing-secret"
	}

	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func checkUserHandler(c *gin.Context) {
	u, exist := c.Get("user")
	if !exist {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}

func roleEngine(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/restricted", RequireAuth(testDB), CheckRole(roles...), checkUserHandler)
	return r
}

func callWithToken(t *testing.T, engine *gin.Engine, path string, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	assert.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCheckRole_Allowed(t *testing.T) {
	engine := roleEngine(model.RoleRecruiter)
	token, err := auth.GetAccessToken(t, testDB, database.TestUserRecruiter1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec := callWithToken(t, engine, "/restricted", token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCheckRole_Forbidden(t *testing.T) {
	engine := roleEngine(model.RoleRecruiter)
	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec := callWithToken(t, engine, "/restricted", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "permission")
}

func TestCheckRole_MultipleRoles(t *testing.T) {
	engine := roleEngine(model.RoleJobSeeker, model.RoleRecruiter)
	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec := callWithToken(t, engine, "/restricted", token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCheckRole_NoUserInContext(t *testing.T) {
	r := gin.New()
	// CheckRole without RequireAuth in front, so no user on the context
	r.GET("/restricted", CheckRole(model.RoleRecruiter), checkUserHandler)

	rec := callWithToken(t, r, "/restricted", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJwtBlacklistCheck_RevokedToken(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	store := auth.NewInMemoryBlacklistStore()
	assert.NoError(t, store.AddToBlacklist(token, time.Now().Add(time.Hour)))

	r := gin.New()
	r.GET("/protected", RequireAuth(testDB), JwtBlacklistCheck(store), checkUserHandler)

	rec := callWithToken(t, r, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Token has been revoked", body["error"])
}

func TestJwtBlacklistCheck_CleanToken(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	store := auth.NewInMemoryBlacklistStore()

	r := gin.New()
	r.GET("/protected", RequireAuth(testDB), JwtBlacklistCheck(store), checkUserHandler)

	rec := callWithToken(t, r, "/protected", token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSizeLimit_RejectsOversizedUpload(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(1024), func(c *gin.Context) {
		if _, err := c.FormFile("file"); err != nil {
			var maxBytesError *http.MaxBytesError
			if errors.As(err, &maxBytesError) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Entity too large"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "big.bin")
	assert.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(make([]byte, 64*1024)))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/upload", &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSizeLimit_AllowsSmallUpload(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(1024*1024), func(c *gin.Context) {
		if _, err := c.FormFile("file"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "small.txt")
	assert.NoError(t, err)
	_, err = part.Write([]byte("tiny payload"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/upload", &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
