package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"medibook-portals/internal/storage"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestClient(t *testing.T, serverURL string, publicPaths []string) (*Client, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	client, err := New(Config{BaseURL: serverURL, PublicPaths: publicPaths}, store, testLogger())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return client, store
}

func TestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL, nil)
	store.Save("abc123", "refresh123")

	if err := client.Get(context.Background(), "/users/me/", nil, nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc123")
	}
}

func TestNoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	if err := client.Get(context.Background(), "/doctors/", nil, nil); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestUnauthorizedClearsCredentialsAndFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Given token not valid for any token type"}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL, nil)
	store.Save("expired", "expired-refresh")

	hookCalls := 0
	client.SetUnauthorizedHook(func() { hookCalls++ })

	err := client.Get(context.Background(), "/appointments/", nil, nil)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if store.Access() != "" || store.Refresh() != "" {
		t.Errorf("credentials not cleared: access=%q refresh=%q", store.Access(), store.Refresh())
	}
	if hookCalls != 1 {
		t.Errorf("hook called %d times, want 1", hookCalls)
	}
}

func TestUnauthorizedOnPublicPathPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "nope"}`))
	}))
	defer server.Close()

	client, store := newTestClient(t, server.URL, []string{"/doctors/", "/auth/login/"})
	store.Save("stale", "stale-refresh")

	hookCalls := 0
	client.SetUnauthorizedHook(func() { hookCalls++ })

	// Substring match covers nested sub-resources of an allowlisted prefix.
	err := client.Get(context.Background(), "/doctors/3/available_slots/", nil, nil)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if store.Access() != "stale" {
		t.Errorf("credentials wiped on a public path: access=%q", store.Access())
	}
	if hookCalls != 0 {
		t.Errorf("hook fired on a public path")
	}
}

func TestErrorPassedUpwardVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Wrong email entered"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	err := client.Post(context.Background(), "/auth/login/", map[string]string{}, nil)
	if got := MessageOr(err, "fallback"); got != "Wrong email entered" {
		t.Errorf("MessageOr() = %q, want server message", got)
	}
}

func TestFieldErrorsDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"doctor_id": ["Invalid doctor."], "appointment_time": ["This time slot is already booked."]}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	err := client.Post(context.Background(), "/appointments/", map[string]string{}, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if got := apiErr.Field("doctor_id"); got != "Invalid doctor." {
		t.Errorf("Field(doctor_id) = %q", got)
	}
	if got := apiErr.Field("missing"); got != "" {
		t.Errorf("Field(missing) = %q, want empty", got)
	}
}

func TestQueryParametersEncoded(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL, nil)

	query := url.Values{}
	query.Set("search", "cardio logy")
	query.Set("city", "Pune")
	var out []struct{}
	if err := client.Get(context.Background(), "/doctors/", query, &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if gotQuery.Get("search") != "cardio logy" || gotQuery.Get("city") != "Pune" {
		t.Errorf("query = %v", gotQuery)
	}
}
