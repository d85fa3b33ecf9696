package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost")

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_BaseURL(t *testing.T) {
	client := NewHTTPClient("https://sandbox.monnify.com/api/v1")

	if client.BaseURL != "https://sandbox.monnify.com/api/v1" {
		t.Errorf("expected base url to be bound, got %q", client.BaseURL)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a.example")
	client2 := NewHTTPClient("http://b.example")

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_SendsAcceptJSON(t *testing.T) {
	var gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL + "/api/v1")
	resp, err := client.R().Get("/auth/login")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode())
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept 'application/json', got %q", gotAccept)
	}
	if gotPath != "/api/v1/auth/login" {
		t.Errorf("expected path resolved against base url, got %q", gotPath)
	}
}
