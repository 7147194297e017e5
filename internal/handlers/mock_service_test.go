package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"citysim/internal/city"
	"citysim/internal/models"
	"citysim/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	token     service.Token
	signInErr error
	parseID   int
	parseErr  error

	lastName       string
	lastPassword   string
	lastParseToken string
}

func (m *mockAuth) SignUp(ctx context.Context, name, password string) (int, error) {
	m.lastName, m.lastPassword = name, password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) SignIn(ctx context.Context, name, password string) (service.Token, error) {
	m.lastName, m.lastPassword = name, password
	return m.token, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockMonitoring struct {
	state models.SessionState
	stats city.Stats
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.SessionState, error) {
	return m.state, m.err
}
func (m *mockMonitoring) GetStats(ctx context.Context) (city.Stats, error) {
	return m.stats, m.err
}

type mockEventLog struct {
	resp       []string
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]string, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockSaves struct {
	slot     models.SaveSlot
	state    models.SessionState
	slots    []models.SaveSlot
	saveErr  error
	loadErr  error
	listErr  error
	lastSlot string
}

func (m *mockSaves) Save(ctx context.Context, slot string) (models.SaveSlot, error) {
	m.lastSlot = slot
	return m.slot, m.saveErr
}
func (m *mockSaves) Load(ctx context.Context, slot string) (models.SessionState, error) {
	m.lastSlot = slot
	return m.state, m.loadErr
}
func (m *mockSaves) ListSlots(ctx context.Context) ([]models.SaveSlot, error) {
	return m.slots, m.listErr
}

type mockHighscores struct {
	top       []models.Highscore
	submitted models.Highscore
	err       error
	lastName  string
	lastLimit int
}

func (m *mockHighscores) SubmitScore(ctx context.Context, name string) (models.Highscore, error) {
	m.lastName = name
	return m.submitted, m.err
}
func (m *mockHighscores) TopScores(ctx context.Context, limit int) ([]models.Highscore, error) {
	m.lastLimit = limit
	return m.top, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// newSessionService wires a real game session behind the city endpoints.
func newSessionService(cfg city.Config) (*service.Service, *service.GameSession) {
	session := service.NewGameSession(service.SessionOptions{City: cfg, Seed: 7}, nil, nil)
	return &service.Service{
		Authorization: &mockAuth{parseID: 1},
		CityControl:   session,
		Monitoring:    service.NewMonitoringService(session),
		EventLog:      service.NewEventLogService(session),
	}, session
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doRequest sends an authorized request with an optional JSON body.
func doRequest(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
