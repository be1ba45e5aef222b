package updates

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		candidate string
		expected  bool
	}{
		{"patch bump", "v1.0.0", "v1.0.1", true},
		{"minor bump", "1.1.0", "1.2.0", true},
		{"major bump", "v1.9.9", "v2.0.0", true},
		{"equal", "v1.2.3", "v1.2.3", false},
		{"older", "v1.2.3", "v1.2.2", false},
		{"prefix mix", "1.0.0", "v1.0.1", true},
		{"prerelease suffix", "v1.0.0", "v1.0.1-rc1", true},
		{"garbage candidate", "v1.0.0", "banana", false},
		{"garbage current", "banana", "v0.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNewer(tt.current, tt.candidate); got != tt.expected {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.candidate, got, tt.expected)
			}
		})
	}
}

func TestCheckLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v2.0.0"}`))
	}))
	defer server.Close()

	oldURL := ReleaseURL
	ReleaseURL = server.URL
	defer func() { ReleaseURL = oldURL }()

	version, ok := CheckLatest("v1.0.0")
	if !ok {
		t.Fatal("CheckLatest() should report an update")
	}
	if version != "v2.0.0" {
		t.Errorf("version = %v, want v2.0.0", version)
	}

	if _, ok := CheckLatest("v2.0.0"); ok {
		t.Error("CheckLatest() should not report the current version")
	}
}

func TestCheckLatest_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	oldURL := ReleaseURL
	ReleaseURL = server.URL
	defer func() { ReleaseURL = oldURL }()

	if _, ok := CheckLatest("v1.0.0"); ok {
		t.Error("CheckLatest() should treat server errors as no update")
	}
}
