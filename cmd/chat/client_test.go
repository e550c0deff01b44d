package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Model = "test-model"
	cfg.SystemPrompt = "SYSTEM"
	return NewClient(cfg)
}

func TestGenerate(t *testing.T) {
	var got generateRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(generateResponse{
			Response: "hello back",
			Thinking: "pondering",
		})
	})

	reply, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Response != "hello back" || reply.Thinking != "pondering" {
		t.Errorf("reply = %+v", reply)
	}
	if got.Model != "test-model" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Stream {
		t.Error("stream should be false")
	}
	if !strings.HasPrefix(got.Prompt, "SYSTEM") || !strings.Contains(got.Prompt, "hello") {
		t.Errorf("prompt missing system prefix or user text: %q", got.Prompt)
	}
}

func TestGenerateServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})

	_, err := c.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry status: %v", err)
	}
}

func TestGenerateErrorField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Error: "out of memory"})
	})

	_, err := c.Generate(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "out of memory") {
		t.Errorf("expected server error surfaced, got %v", err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	})

	reply, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Response == "" {
		t.Error("empty response should be replaced with a placeholder")
	}
}

func TestGenerateContextCancel(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Generate(ctx, "hello"); err == nil {
		t.Error("cancelled context should error")
	}
}
