package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hydroponics/internal/models"
	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

var errTest = errors.New("boom")

type mockAuth struct {
	signUpUser    models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int64
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (models.User, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int64, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProfile struct {
	user models.User
	err  error

	lastUserID  int64
	lastInput   service.ProfileInput
	lastPartial bool
	updateCalls int
}

func (m *mockProfile) Me(ctx context.Context, userID int64) (models.User, error) {
	m.lastUserID = userID
	return m.user, m.err
}
func (m *mockProfile) UpdateMe(ctx context.Context, userID int64, in service.ProfileInput, partial bool) (models.User, error) {
	m.lastUserID = userID
	m.lastInput = in
	m.lastPartial = partial
	m.updateCalls++
	return m.user, m.err
}

type mockSystems struct {
	list   []models.System
	system models.System
	detail models.SystemDetail
	err    error

	lastUserID  int64
	lastID      int64
	lastFilter  models.SystemFilter
	lastInput   service.SystemInput
	lastPartial bool
	calls       int
}

func (m *mockSystems) ListSystems(ctx context.Context, userID int64, f models.SystemFilter) ([]models.System, error) {
	m.calls++
	m.lastUserID, m.lastFilter = userID, f
	return m.list, m.err
}
func (m *mockSystems) CreateSystem(ctx context.Context, userID int64, in service.SystemInput) (models.System, error) {
	m.calls++
	m.lastUserID, m.lastInput = userID, in
	return m.system, m.err
}
func (m *mockSystems) GetSystem(ctx context.Context, userID, id int64) (models.SystemDetail, error) {
	m.calls++
	m.lastUserID, m.lastID = userID, id
	return m.detail, m.err
}
func (m *mockSystems) UpdateSystem(ctx context.Context, userID, id int64, in service.SystemInput, partial bool) (models.System, error) {
	m.calls++
	m.lastUserID, m.lastID, m.lastInput, m.lastPartial = userID, id, in, partial
	return m.system, m.err
}
func (m *mockSystems) DeleteSystem(ctx context.Context, userID, id int64) error {
	m.calls++
	m.lastUserID, m.lastID = userID, id
	return m.err
}

type mockMeasurements struct {
	list        []models.Measurement
	measurement models.Measurement
	err         error

	lastUserID  int64
	lastID      int64
	lastFilter  models.MeasurementFilter
	lastInput   service.MeasurementInput
	lastPartial bool
	calls       int
}

func (m *mockMeasurements) ListMeasurements(ctx context.Context, userID int64, f models.MeasurementFilter) ([]models.Measurement, error) {
	m.calls++
	m.lastUserID, m.lastFilter = userID, f
	return m.list, m.err
}
func (m *mockMeasurements) CreateMeasurement(ctx context.Context, userID int64, in service.MeasurementInput) (models.Measurement, error) {
	m.calls++
	m.lastUserID, m.lastInput = userID, in
	return m.measurement, m.err
}
func (m *mockMeasurements) GetMeasurement(ctx context.Context, userID, id int64) (models.Measurement, error) {
	m.calls++
	m.lastUserID, m.lastID = userID, id
	return m.measurement, m.err
}
func (m *mockMeasurements) UpdateMeasurement(ctx context.Context, userID, id int64, in service.MeasurementInput, partial bool) (models.Measurement, error) {
	m.calls++
	m.lastUserID, m.lastID, m.lastInput, m.lastPartial = userID, id, in, partial
	return m.measurement, m.err
}
func (m *mockMeasurements) DeleteMeasurement(ctx context.Context, userID, id int64) error {
	m.calls++
	m.lastUserID, m.lastID = userID, id
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// do runs a request against r. body is sent as JSON when non-empty.
func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range authHeader(token) {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// validationFields decodes a 400 body into its field map.
func validationFields(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var out struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode validation body: %v (%s)", err, w.Body.String())
	}
	if out.Error != errValidation {
		t.Fatalf("error = %q, want %q", out.Error, errValidation)
	}
	return out.Fields
}
