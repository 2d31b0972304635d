package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSend_PostsJSONPayload(t *testing.T) {
	var received Notification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Send(context.Background(), Notification{Title: "Alert: Vacinação", Message: "due at noon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.Title != "Alert: Vacinação" || received.Message != "due at noon" {
		t.Fatalf("unexpected payload: %+v", received)
	}
}

func TestSend_NonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.Send(context.Background(), Notification{Title: "t", Message: "m"}); err == nil {
		t.Fatal("expected error for non-success status")
	}
}
