package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/elfinfo/internal/diag"
)

var header64 = []byte{
	0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0x02, 0x00, 0x3e, 0x00, 0x01, 0x00, 0x00, 0x00,
	0x00, 0x10, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x40, 0x00, 0x38, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

func newTestEcho(cfg Config) *echo.Echo {
	e := echo.New()
	NewServer(cfg).Register(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "application/octet-stream")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) HeaderResponse {
	t.Helper()
	var resp HeaderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v\n%s", err, rec.Body.String())
	}
	return resp
}

func TestInspectGetDeleteLifecycle(t *testing.T) {
	t.Parallel()

	e := newTestEcho(Config{})
	rec := do(t, e, http.MethodPost, "/v1/headers", header64)
	if rec.Code != http.StatusOK {
		t.Fatalf("inspect status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		t.Fatalf("content type: %q", ct)
	}

	created := decodeResponse(t, rec)
	if !strings.HasPrefix(created.ID, "hdr_") {
		t.Fatalf("unexpected id %q", created.ID)
	}
	if created.Error != nil || created.Header == nil {
		t.Fatalf("expected a header and no error: %s", rec.Body.String())
	}
	if created.Header.Machine.Name != "x86-64" || created.Header.Entry != "0x401000" {
		t.Fatalf("unexpected header: %+v", created.Header)
	}
	if created.Size != len(header64) {
		t.Fatalf("size: got %d", created.Size)
	}

	getRec := do(t, e, http.MethodGet, "/v1/headers/"+created.ID, nil)
	if getRec.Code != http.StatusOK {
		t.Fatalf("get status: got %d body=%s", getRec.Code, getRec.Body.String())
	}
	if got := decodeResponse(t, getRec); got.ID != created.ID {
		t.Fatalf("get returned %q", got.ID)
	}

	delRec := do(t, e, http.MethodDelete, "/v1/headers/"+created.ID, nil)
	if delRec.Code != http.StatusOK || !strings.Contains(delRec.Body.String(), `"deleted":true`) {
		t.Fatalf("delete: %d %s", delRec.Code, delRec.Body.String())
	}

	if rec := do(t, e, http.MethodGet, "/v1/headers/"+created.ID, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodDelete, "/v1/headers/"+created.ID, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestInspectDecodeFailures(t *testing.T) {
	t.Parallel()

	badMachine := bytes.Clone(header64)
	badMachine[18], badMachine[19] = 0xff, 0xff

	tests := []struct {
		name    string
		body    []byte
		kind    diag.Kind
		context []string
	}{
		{"unknown machine", badMachine, diag.KindUnknownCode, []string{"e_machine", "elf header"}},
		{"truncated", header64[:30], diag.KindIncomplete, nil},
		{"empty", nil, diag.KindIncomplete, nil},
		{"not elf", []byte("#!/bin/sh\necho hi\n"), diag.KindMagicMismatch, []string{"ei_mag", "e_ident", "elf header"}},
	}

	e := newTestEcho(Config{})
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/v1/headers", tc.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
			}
			resp := decodeResponse(t, rec)
			if resp.Header != nil || resp.Error == nil {
				t.Fatalf("expected only an error: %s", rec.Body.String())
			}
			if resp.Error.Kind != tc.kind {
				t.Fatalf("type: got %q, want %q", resp.Error.Kind, tc.kind)
			}
			if resp.Error.Offset == nil {
				t.Fatal("expected an offset")
			}
			if tc.context != nil && !slices.Equal(resp.Error.Context, tc.context) {
				t.Fatalf("context: got %v, want %v", resp.Error.Context, tc.context)
			}
		})
	}
}

func TestInspectFailuresAreNotStored(t *testing.T) {
	t.Parallel()
	s := NewServer(Config{})
	e := echo.New()
	s.Register(e)

	rec := do(t, e, http.MethodPost, "/v1/headers", header64[:10])
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d", rec.Code)
	}
	if s.store.Len() != 0 {
		t.Fatalf("failed inspections must not be stored, have %d", s.store.Len())
	}
}

func TestInspectBodyLimit(t *testing.T) {
	t.Parallel()
	e := newTestEcho(Config{MaxBodyBytes: 64})

	if rec := do(t, e, http.MethodPost, "/v1/headers", header64); rec.Code != http.StatusOK {
		t.Fatalf("body at the limit: got %d body=%s", rec.Code, rec.Body.String())
	}

	rec := do(t, e, http.MethodPost, "/v1/headers", append(bytes.Clone(header64), 0))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"type":"request_too_large"`) {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	rec := do(t, newTestEcho(Config{}), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["version"] == "" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestResultStoreEviction(t *testing.T) {
	t.Parallel()
	s := NewResultStore(2)
	s.Put(HeaderResponse{ID: "a"})
	s.Put(HeaderResponse{ID: "b"})
	s.Put(HeaderResponse{ID: "c"})

	if _, ok := s.Get("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	for _, id := range []string{"b", "c"} {
		if _, ok := s.Get(id); !ok {
			t.Fatalf("missing %q", id)
		}
	}
	if s.Len() != 2 {
		t.Fatalf("len: %d", s.Len())
	}

	s.Put(HeaderResponse{ID: "b", Size: 9})
	if got, _ := s.Get("b"); got.Size != 9 {
		t.Fatal("re-putting an id must replace it")
	}
	if s.Len() != 2 {
		t.Fatalf("len after replace: %d", s.Len())
	}
}
