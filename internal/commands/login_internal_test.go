package commands

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCallbackHandle(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		status  int
		code    string
		wantErr string
	}{
		{"success", "?state=s1&code=abc", http.StatusOK, "abc", ""},
		{"state mismatch", "?state=other&code=abc", http.StatusBadRequest, "", "oauth state mismatch"},
		{"missing code", "?state=s1", http.StatusBadRequest, "", "no code in callback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &callback{codes: make(chan string, 1), errs: make(chan error, 1), state: "s1"}
			w := httptest.NewRecorder()
			cb.handle(w, httptest.NewRequest(http.MethodGet, "/callback"+tt.query, nil))

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			select {
			case code := <-cb.codes:
				if code != tt.code {
					t.Errorf("expected code %q, got %q", tt.code, code)
				}
			case err := <-cb.errs:
				if err.Error() != tt.wantErr {
					t.Errorf("expected error %q, got %v", tt.wantErr, err)
				}
			}
		})
	}
}

func TestCallbackFail_KeepsFirstError(t *testing.T) {
	cb := &callback{errs: make(chan error, 1)}
	cb.fail(errString("first"))
	cb.fail(errString("second"))
	if err := <-cb.errs; err.Error() != "first" {
		t.Errorf("expected first error, got %v", err)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
