package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Get_InjectsHeaders(t *testing.T) {
	var gotAccept, gotUserAgent, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient("secret-token")
	c.SetBaseURL(srv.URL)

	body, err := c.Get(context.Background(), "repos/foo/bar", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Unexpected body: %s", body)
	}

	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept header = %q", gotAccept)
	}
	if gotUserAgent != "GitHub-Project-Analyst-Agent" {
		t.Errorf("User-Agent header = %q", gotUserAgent)
	}
	if gotAuth != "token secret-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
}

func TestClient_Get_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("")
	c.SetBaseURL(srv.URL)

	if _, err := c.Get(context.Background(), "repos/foo/bar", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sawAuth {
		t.Errorf("Expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_Get_EncodesParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("per_page")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient("")
	c.SetBaseURL(srv.URL)

	params := map[string][]string{"per_page": {"42"}}
	if _, err := c.Get(context.Background(), "repos/foo/bar/contributors", params); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotQuery != "42" {
		t.Errorf("per_page = %q, want 42", gotQuery)
	}
}

func TestClient_Get_Non2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("")
	c.SetBaseURL(srv.URL)

	_, err := c.Get(context.Background(), "repos/foo/missing", nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if !strings.HasPrefix(err.Error(), "API request failed") {
		t.Errorf("Error message = %q, want 'API request failed' prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("Error message = %q, want HTTP status", err.Error())
	}
}

func TestClient_Get_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on

	c := NewClient("")
	c.SetBaseURL(srv.URL)

	_, err := c.Get(context.Background(), "repos/foo/bar", nil)
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}
	if !strings.HasPrefix(err.Error(), "API request failed") {
		t.Errorf("Error message = %q, want 'API request failed' prefix", err.Error())
	}
}
