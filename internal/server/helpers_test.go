package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"workhub/internal/config"
	"workhub/internal/database"
	"workhub/internal/middleware"
	"workhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestServer builds a server on an in-memory sqlite DB with routes
// registered. No redis client is attached; caching degrades to direct reads.
func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Port:      "0",
		Env:       "test",
	}
	middleware.InitMiddleware(cfg)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Same setting as production so unique-index violations surface as
		// gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s := newServerWithDB(cfg, db, nil)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

var testUserSeq int

// createTestUser persists a user with the given role and returns it together
// with a bearer token for it.
func createTestUser(t *testing.T, s *Server, role models.UserRole) (*models.User, string) {
	t.Helper()

	testUserSeq++
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", testUserSeq),
		Email:     fmt.Sprintf("user%d@example.com", testUserSeq),
		Password:  string(hash),
		Role:      role,
	}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, "Bearer " + token
}

// doJSON issues a request with an optional JSON body and bearer token, and
// decodes the response body into out when it is non-nil.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
