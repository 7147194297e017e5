package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"citysim/internal/repository"
	"citysim/internal/service"
)

func postJSON(r http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_SignUpAndSignIn(t *testing.T) {
	expires := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	auth := &mockAuth{signUpID: 42, token: service.Token{Value: "tok123", ExpiresAt: expires}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/auth/sign-up", `{"name":"ada","password":"hunter22"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("sign-up status=%d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		ID int `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.ID != 42 || auth.lastName != "ada" || auth.lastPassword != "hunter22" {
		t.Fatalf("unexpected sign-up: %+v %+v", created, auth)
	}

	w = postJSON(r, "/auth/sign-in", `{"name":"ada","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status=%d body=%s", w.Code, w.Body.String())
	}
	var tok service.Token
	_ = json.Unmarshal(w.Body.Bytes(), &tok)
	if tok.Value != "tok123" || !tok.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestAuthHandlers_Failures(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		auth   *mockAuth
		want   int
	}{
		{"bad body", "/auth/sign-in", `{"name":1}`, &mockAuth{}, http.StatusBadRequest},
		{"missing password", "/auth/sign-up", `{"name":"ada"}`, &mockAuth{}, http.StatusBadRequest},
		{"weak password", "/auth/sign-up", `{"name":"ada","password":"x"}`,
			&mockAuth{signUpErr: fmt.Errorf("%w: password too short", service.ErrInvalidArgument)}, http.StatusBadRequest},
		{"taken name", "/auth/sign-up", `{"name":"ada","password":"hunter22"}`,
			&mockAuth{signUpErr: fmt.Errorf("%w: %q", repository.ErrMayorExists, "ada")}, http.StatusConflict},
		{"wrong credentials", "/auth/sign-in", `{"name":"ada","password":"nope!!"}`,
			&mockAuth{signInErr: service.ErrInvalidCredentials}, http.StatusUnauthorized},
		{"storage failure", "/auth/sign-in", `{"name":"ada","password":"hunter22"}`,
			&mockAuth{signInErr: errors.New("database is locked")}, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})
			w := postJSON(r, tc.target, tc.body)
			if w.Code != tc.want {
				t.Fatalf("status=%d want=%d body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusInternalServerError && strings.Contains(w.Body.String(), "locked") {
				t.Fatalf("internal error leaked: %s", w.Body.String())
			}
		})
	}
}
