// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-crypto-catalog/internal/config"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServiceAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServiceAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{Address: serverURL, BasePath: "/api", RequestTimeout: 5 * time.Second}

	return NewHTTPServiceAdapter(adapterCfg, logger.Nop()).(*httpServiceAdapter)
}

// ── ListEntries ─────────────────────────────────────────────────────────────

func TestListEntries_Cryptosystem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cryptosystem/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "RSA", "fields": {
				"create_key": [{"type": "number", "name": "bits", "placeholder": "Bits", "id": "bits"}],
				"encrypt": [
					{"type": "number", "name": "n", "placeholder": "n"},
					{"type": "number", "name": "e", "placeholder": "e"},
					{"type": "textarea", "name": "message", "placeholder": "Message"}
				]
			}},
			{"_id": {"$oid": "65f0c0ffee"}, "title": "Elliptic Curve", "fields": {
				"create_key": [{"type": "color", "name": "Px"}]
			}}
		]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	entries, err := a.ListEntries(context.Background(), models.Cryptosystem)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	rsa := entries[0]
	assert.Equal(t, "1", rsa.ID)
	assert.Equal(t, "RSA", rsa.Title)
	assert.NotEmpty(t, rsa.Operations(models.Cryptosystem))
	fields := rsa.Fields(models.OperationEncrypt)
	require.Len(t, fields, 3)
	assert.Equal(t, "message", fields[2].Name)
	assert.Equal(t, models.FieldTextarea, fields[2].Type)
	assert.Equal(t, "bits", rsa.Fields(models.OperationCreateKey)[0].ElementID)

	ec := entries[1]
	assert.Equal(t, "65f0c0ffee", ec.ID)
	assert.Equal(t, models.FieldText, ec.Fields(models.OperationCreateKey)[0].Type)
}

func TestListEntries_Articles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/article/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": "a1", "title": "Why primes matter", "content": "<p>Because.</p>"}]`))
	}))
	defer srv.Close()

	entries, err := newTestAdapter(t, srv.URL).ListEntries(context.Background(), models.Article)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "<p>Because.</p>", entries[0].Content)
	assert.Empty(t, entries[0].Operations(models.Article))
}

func TestListEntries_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not a list", body: `{"title": "RSA"}`},
		{name: "missing title", body: `[{"id": 1}]`},
		{name: "field without name", body: `[{"id": 1, "title": "RSA", "fields": {"encrypt": [{"type": "text"}]}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ListEntries(context.Background(), models.Cryptosystem)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestListEntries_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("unknown category"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListEntries(context.Background(), models.Algorithm)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEntries_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListEntries(context.Background(), models.Algorithm)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

// ── Execute ─────────────────────────────────────────────────────────────────

func TestExecute_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/digital_signature/signature_on_elgammal/sign/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"p": "23", "alpha": "5", "message": ""}, body)

		_, _ = w.Write([]byte(`{"r": 3, "s": 17, "keys": {"public": 77}}`))
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).Execute(context.Background(), models.OperationRequest{
		Category:  models.DigitalSignature,
		Entry:     "Signature on ElGammal",
		Operation: models.OperationSign,
		Values:    models.FormValues{"p": "23", "alpha": "5", "message": ""},
		RequestID: "req-42",
	})

	require.NoError(t, err)
	require.Len(t, res.Fields, 3)
	assert.Equal(t, "r", res.Fields[0].Key)
	assert.Equal(t, "keys", res.Fields[2].Key)
}

func TestExecute_ServiceReportedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Error": "NULL Value"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Execute(context.Background(), models.OperationRequest{
		Category:  models.Cryptosystem,
		Entry:     "RSA",
		Operation: models.OperationCreateKey,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceReported)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "NULL Value", svcErr.Message)
}

func TestExecute_ErrorKeyAmongOthersIsAResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Error": 0.01, "estimate": 42}`))
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).Execute(context.Background(), models.OperationRequest{
		Category:  models.Algorithm,
		Entry:     "Miller-Rabin",
		Operation: models.OperationInput,
	})

	require.NoError(t, err)
	assert.Len(t, res.Fields, 2)
}

func TestExecute_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Execute(context.Background(), models.OperationRequest{
				Category: models.Cryptosystem, Entry: "RSA", Operation: models.OperationEncrypt,
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).Execute(ctx, models.OperationRequest{
		Category: models.Cryptosystem, Entry: "RSA", Operation: models.OperationCreateKey,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestTimeout)
}

func TestExecute_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Execute(context.Background(), models.OperationRequest{
		Category: models.Cryptosystem, Entry: "RSA", Operation: models.OperationCreateKey,
	})

	assert.ErrorIs(t, err, models.ErrInvalidResult)
}

// ── normalizeID ─────────────────────────────────────────────────────────────

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `7`, want: "7"},
		{raw: `"rsa"`, want: "rsa"},
		{raw: `{"$oid": "abc123"}`, want: "abc123"},
		{raw: `null`, want: ""},
		{raw: ``, want: ""},
		{raw: `[1]`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeID(json.RawMessage(tt.raw)))
		})
	}
}
