package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWsRejectsMissingToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/ws", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", w.Code)
	}
}

func TestWsPushesGeneratedResponses(t *testing.T) {
	r, db := newTestServer(t)
	_, token := loginAs(t, r, db, "user1@example.com")
	b := createBrand(t, r, token, "Nike", "")

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws?token=" + url.QueryEscape(token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	defer conn.Close()

	// Give the hub a beat to process the registration.
	time.Sleep(50 * time.Millisecond)

	res := generateResponse(t, r, token, b.ID)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read ws message: %v", err)
	}

	var msg struct {
		Type string `json:"type"`
		Data struct {
			ID           uint   `json:"id"`
			BrandID      uint   `json:"brand_id"`
			ResponseText string `json:"response_text"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("decode ws message %q: %v", payload, err)
	}

	if msg.Type != "response_generated" {
		t.Errorf("type = %q, want response_generated", msg.Type)
	}
	if msg.Data.ID != res.ID || msg.Data.BrandID != b.ID {
		t.Errorf("data = %+v, want response %d of brand %d", msg.Data, res.ID, b.ID)
	}
	if msg.Data.ResponseText == "" {
		t.Error("pushed response has empty text")
	}
}
