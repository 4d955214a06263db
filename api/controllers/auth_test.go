package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
)

func TestLoginReturnsToken(t *testing.T) {
	stub := &stubAuthService{token: "signed-token"}
	handler := Login(stub, testLogger())

	body := strings.NewReader(`{"username":"vuapod","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, [2]string{"vuapod", "secret"}, stub.last)

	var envelope struct {
		Data loginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "signed-token", envelope.Data.Token)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	stub := &stubAuthService{token: "signed-token"}
	handler := Login(stub, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"vuapod"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, stub.last[0], "service should not be invoked on invalid body")
}

func TestLoginSurfacesUnauthorized(t *testing.T) {
	stub := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := Login(stub, testLogger())

	body := strings.NewReader(`{"username":"vuapod","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
