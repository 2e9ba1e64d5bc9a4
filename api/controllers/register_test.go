package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quintech/quintech-backend/internal/auth"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
)

type stubRegisterService struct {
	lastReq auth.RegisterRequest
	resp    *auth.TokenResponse
	err     error
	calls   int
}

func (s *stubRegisterService) Register(_ context.Context, req auth.RegisterRequest) (*auth.TokenResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSignupReturnsToken(t *testing.T) {
	svc := &stubRegisterService{resp: &auth.TokenResponse{Token: "jwt-token"}}
	handler := Signup(svc, nil)

	body := `{"email":"rivka@example.com","password":"pass-1234","confirmPassword":"pass-1234","handle":"rivka","name":"Rivka Stern"}`
	rec := postJSON(handler, "/signup", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "jwt-token" {
		t.Fatalf("expected token in response, got %v", resp)
	}
	if svc.lastReq.Handle != "rivka" {
		t.Fatalf("expected handle to reach service, got %q", svc.lastReq.Handle)
	}
	if svc.lastReq.Name != "Rivka Stern" {
		t.Fatalf("expected name to reach service, got %q", svc.lastReq.Name)
	}
}

func TestSignupRejectsMismatchedPasswords(t *testing.T) {
	svc := &stubRegisterService{resp: &auth.TokenResponse{Token: "jwt-token"}}
	handler := Signup(svc, nil)

	body := `{"email":"rivka@example.com","password":"pass-1234","confirmPassword":"different","handle":"rivka","name":"Rivka Stern"}`
	rec := postJSON(handler, "/signup", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["confirmPassword"] != "must match password" {
		t.Fatalf("expected confirmPassword message, got %v", resp)
	}
	if svc.calls != 0 {
		t.Fatalf("expected no service call on validation failure, got %d", svc.calls)
	}
}

func TestSignupTakenHandleIsBadRequest(t *testing.T) {
	svc := &stubRegisterService{err: pkgerrors.New(pkgerrors.CodeHandleTaken, "handle already taken")}
	handler := Signup(svc, nil)

	body := `{"email":"rivka@example.com","password":"pass-1234","confirmPassword":"pass-1234","handle":"rivka","name":"Rivka Stern"}`
	rec := postJSON(handler, "/signup", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["handle"] != "this handle is already taken" {
		t.Fatalf("expected handle conflict message, got %v", resp)
	}
}

func TestSignupMissingFieldsListsEachField(t *testing.T) {
	svc := &stubRegisterService{}
	handler := Signup(svc, nil)

	rec := postJSON(handler, "/signup", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"email", "password", "handle", "name"} {
		if resp[field] == "" {
			t.Fatalf("expected message for %s, got %v", field, resp)
		}
	}
}
