package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccessStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteSuccessStatus(rec, http.StatusCreated, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc", body["token"])
}

func TestWriteErrorUsesFieldKey(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeHandleTaken, "handle already taken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "this handle is already taken", body["handle"])
	assert.Len(t, body, 1)
}

func TestWriteErrorBadCredentialsIsForbidden(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeBadCredentials, "wrong credentials"))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "wrong credentials, please try again", body["general"])
}

func TestWriteErrorValidationDetailsBecomeBody(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"email": "must be a valid email", "handle": "is required"})

	WriteError(context.Background(), nil, rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "must be a valid email", body["email"])
	assert.Equal(t, "is required", body["handle"])
}

func TestWriteErrorUnknownErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, errors.New("driver: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong, please try again", body["general"])
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
