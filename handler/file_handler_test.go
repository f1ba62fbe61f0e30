package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/devfolio/pkg/endpoint"
)

type fileHandler interface {
	Handle(http.ResponseWriter, *http.Request) *endpoint.ApiError
}

type testEnvelope struct {
	Version string `json:"version"`
	Data    any    `json:"data"`
}

func writeTempJSON(t *testing.T, v any) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "data.json")
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}

	if err := json.NewEncoder(f).Encode(v); err != nil {
		t.Fatalf("encode: %v", err)
	}

	f.Close()

	return f.Name()
}

type fileHandlerTestCase struct {
	make     func(string) fileHandler
	endpoint string
	data     any

	assert func(*testing.T, any)
}

func runFileHandlerTest(t *testing.T, tc fileHandlerTestCase) {
	t.Helper()

	file := writeTempJSON(t, testEnvelope{Version: "v1", Data: tc.data})
	h := tc.make(file)

	req := httptest.NewRequest("GET", tc.endpoint, nil)
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("err: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var resp testEnvelope

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Version != "v1" {
		t.Fatalf("version %s", resp.Version)
	}

	tc.assert(t, resp.Data)

	req2 := httptest.NewRequest("GET", tc.endpoint, nil)
	req2.Header.Set("If-None-Match", rec.Header().Get("ETag"))
	rec2 := httptest.NewRecorder()

	if err := h.Handle(rec2, req2); err != nil {
		t.Fatalf("err: %v", err)
	}

	if rec2.Code != http.StatusNotModified {
		t.Fatalf("status %d", rec2.Code)
	}

	badF, _ := os.CreateTemp(t.TempDir(), "bad.json")
	badF.WriteString("{")
	badF.Close()

	bad := tc.make(badF.Name())
	rec3 := httptest.NewRecorder()
	req3 := httptest.NewRequest("GET", tc.endpoint, nil)

	if bad.Handle(rec3, req3) == nil {
		t.Fatalf("expected error")
	}
}

func assertFirstUUID(expected string) func(*testing.T, any) {
	return func(t *testing.T, data any) {
		arr, ok := data.([]interface{})

		if !ok || len(arr) == 0 {
			t.Fatalf("unexpected data: %+v", data)
		}

		m, ok := arr[0].(map[string]interface{})

		if !ok || m["uuid"] != expected {
			t.Fatalf("unexpected payload: %+v", data)
		}
	}
}
