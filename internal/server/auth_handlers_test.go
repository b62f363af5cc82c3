package server

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"jobtrail/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	s, db := setupHandlerTest(t)

	app := fiber.New()
	app.Post("/register", s.Register)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
	}{
		{
			name: "Valid registration",
			requestBody: map[string]string{
				"username": "testuser",
				"password": "password123",
			},
			expectedStatus: fiber.StatusCreated,
		},
		{
			name: "Missing username",
			requestBody: map[string]string{
				"password": "password123",
			},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"username": "testuser2",
			},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name: "Short password",
			requestBody: map[string]string{
				"username": "testuser3",
				"password": "short",
			},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name: "Invalid username characters",
			requestBody: map[string]string{
				"username": "bad user!",
				"password": "password123",
			},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name: "Duplicate username",
			requestBody: map[string]string{
				"username": "testuser",
				"password": "password123",
			},
			expectedStatus: fiber.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var response map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
			if tt.expectedStatus == fiber.StatusCreated {
				assert.NotEmpty(t, response["token"])
				user := response["user"].(map[string]interface{})
				assert.Equal(t, tt.requestBody["username"], user["username"])
				// The password hash never leaves the server.
				assert.NotContains(t, user, "password")
			} else {
				assert.NotEmpty(t, response["error"])
			}
		})
	}

	// The stored password is a bcrypt hash, not the plaintext.
	var stored models.User
	require.NoError(t, db.Where("username = ?", "testuser").First(&stored).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestLogin(t *testing.T) {
	s, db := setupHandlerTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "alice", Password: string(hash)}).Error)

	app := fiber.New()
	app.Post("/login", s.Login)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
	}{
		{
			name: "Valid credentials",
			requestBody: map[string]string{
				"username": "alice",
				"password": "password123",
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "Wrong password",
			requestBody: map[string]string{
				"username": "alice",
				"password": "wrongpassword",
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Unknown user",
			requestBody: map[string]string{
				"username": "nobody",
				"password": "password123",
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var response map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
			if tt.expectedStatus == fiber.StatusOK {
				assert.NotEmpty(t, response["token"])
			} else {
				// Wrong password and unknown user read identically.
				assert.Equal(t, "Invalid username or password", response["error"])
			}
		})
	}
}

func TestGeneratedTokenClaims(t *testing.T) {
	s, _ := setupHandlerTest(t)

	tokenString, err := s.generateToken(42, "alice")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "jobtrail-api", claims["iss"])
	assert.NotEmpty(t, claims["jti"])
}

func TestAuthRequired(t *testing.T) {
	s, db := setupHandlerTest(t)
	require.NoError(t, db.Create(&models.User{Username: "alice", Password: "hash"}).Error)

	token, err := s.generateToken(1, "alice")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Valid token", "Bearer " + token, fiber.StatusOK},
		{"Missing header", "", fiber.StatusUnauthorized},
		{"Not a bearer token", "Basic abc123", fiber.StatusUnauthorized},
		{"Garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == fiber.StatusOK {
				var response map[string]interface{}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
				assert.Equal(t, float64(1), response["user_id"])
			}
		})
	}
}

func TestAuthRequiredRejectsWrongSecret(t *testing.T) {
	s, _ := setupHandlerTest(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
	forgedString, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forgedString)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
