package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-app-server/internal/config"
	"clinic-app-server/internal/models"
	"clinic-app-server/internal/routes"
	"clinic-app-server/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                      "0",
		JWTSecret:                 "test-secret",
		JWTRefreshSecret:          "test-refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 1,
		Timeline:                  config.TimelineConfig{StartHour: 7, EndHour: 18, SlotMinutes: 30},
	}
}

// newTestApp builds the real router over a fresh in-memory database.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := testConfig()
	router := gin.New()
	routes.SetupRoutes(router, db, cfg, zap.NewNop())
	return router, db, cfg
}

// newStaffToken provisions a staff account and returns a bearer token for it.
func newStaffToken(t *testing.T, db *gorm.DB, cfg *config.Config, name string, role models.Role) string {
	t.Helper()

	staff := models.Staff{
		Name:  name,
		Role:  role,
		Email: uuid.New().String() + "@clinic.local",
	}
	if err := staff.SetPassword("test-password-1"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("failed to create staff: %v", err)
	}

	access, _, err := utils.GenerateTokens(&staff, cfg)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return access
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the "data" field of the response envelope.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v\nbody: %s", err, rec.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("failed to decode response data: %v\nbody: %s", err, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestApp(t)
	rec := doRequest(t, router, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health check returned %d", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	router, _, _ := newTestApp(t)
	rec := doRequest(t, router, http.MethodGet, "/api/v1/appointments", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	router, db, _ := newTestApp(t)

	staff := models.Staff{Name: "Dr. Adams", Role: models.RoleDoctor, Email: "adams@clinic.local"}
	if err := staff.SetPassword("correct-horse-1"); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatal(err)
	}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "adams@clinic.local", "password": "correct-horse-1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	decodeData(t, rec, &resp)
	if resp.AccessToken == "" {
		t.Fatal("login response has no access token")
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("correct-horse-1")) {
		t.Fatal("response leaked the password")
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "adams@clinic.local", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password returned %d", rec.Code)
	}
}

func TestStaffRoutesRequireAdmin(t *testing.T) {
	router, db, cfg := newTestApp(t)
	doctorToken := newStaffToken(t, db, cfg, "Dr. Adams", models.RoleDoctor)
	adminToken := newStaffToken(t, db, cfg, "Clinic Admin", models.RoleAdmin)

	body := map[string]interface{}{
		"name": "Nurse Riley", "role": "nurse",
		"email": "riley@clinic.local", "password": "nurse-password-1",
	}

	rec := doRequest(t, router, http.MethodPost, "/api/v1/staff", doctorToken, body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("doctor creating staff returned %d, want 403", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/staff", adminToken, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin creating staff returned %d: %s", rec.Code, rec.Body.String())
	}
}
