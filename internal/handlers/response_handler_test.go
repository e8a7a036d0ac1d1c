package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/modelmonitor/model-monitor/internal/models"
)

// The five fixed sentence shapes of the generator, identified by the
// fragments that survive token substitution.
var templateFragments = []string{
	" is known for ",
	"Based on recent data, ",
	"reputation centers around ",
	"Industry experts describe ",
	" stands out for ",
}

func matchesTemplate(text string) bool {
	for _, frag := range templateFragments {
		if strings.Contains(text, frag) {
			return true
		}
	}
	return false
}

func TestGenerateResponse(t *testing.T) {
	r, db := newTestServer(t)
	_, token := loginAs(t, r, db, "user1@example.com")
	b := createBrand(t, r, token, "Nike", "")

	res := generateResponse(t, r, token, b.ID)

	if res.ID == 0 {
		t.Error("response id not set")
	}
	if res.BrandID != b.ID {
		t.Errorf("brand_id = %d, want %d", res.BrandID, b.ID)
	}
	if res.ResponseText == "" {
		t.Error("response_text is empty")
	}
	if !matchesTemplate(res.ResponseText) {
		t.Errorf("response_text %q matches no template", res.ResponseText)
	}

	var count int64
	db.Model(&models.Response{}).Where("brand_id = ?", b.ID).Count(&count)
	if count != 1 {
		t.Errorf("got %d rows, want exactly 1", count)
	}
}

type responseRow struct {
	ID           uint   `json:"id"`
	BrandID      uint   `json:"brand_id"`
	ResponseText string `json:"response_text"`
	Rating       *bool  `json:"rating"`
	RatingID     *uint  `json:"rating_id"`
}

func listResponses(t *testing.T, r *gin.Engine, token string, brandID uint) []responseRow {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/responses/brand/%d", brandID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}

	var rows []responseRow
	decodeBody(t, w, &rows)
	return rows
}

func TestListResponsesJoinsRatings(t *testing.T) {
	r, db := newTestServer(t)
	_, token := loginAs(t, r, db, "user1@example.com")
	b := createBrand(t, r, token, "Nike", "")

	first := generateResponse(t, r, token, b.ID)
	second := generateResponse(t, r, token, b.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/responses/%d/rate", first.ID), token, gin.H{"rating": false})
	if w.Code != http.StatusOK {
		t.Fatalf("rate returned %d: %s", w.Code, w.Body.String())
	}

	rows := listResponses(t, r, token, b.ID)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Newest first.
	if rows[0].ID != second.ID || rows[1].ID != first.ID {
		t.Errorf("order = [%d %d], want [%d %d]", rows[0].ID, rows[1].ID, second.ID, first.ID)
	}

	if rows[0].Rating != nil || rows[0].RatingID != nil {
		t.Errorf("unrated row has rating %v / rating_id %v, want null", rows[0].Rating, rows[0].RatingID)
	}
	if rows[1].Rating == nil || *rows[1].Rating != false {
		t.Errorf("rated row rating = %v, want false", rows[1].Rating)
	}
	if rows[1].RatingID == nil {
		t.Error("rated row rating_id is null")
	}
}

func TestRateUpsertKeepsOneRow(t *testing.T) {
	r, db := newTestServer(t)
	_, token := loginAs(t, r, db, "user1@example.com")
	b := createBrand(t, r, token, "Nike", "")
	res := generateResponse(t, r, token, b.ID)

	path := fmt.Sprintf("/api/responses/%d/rate", res.ID)

	w := doJSON(t, r, http.MethodPost, path, token, gin.H{"rating": true})
	if w.Code != http.StatusOK {
		t.Fatalf("first rate returned %d: %s", w.Code, w.Body.String())
	}
	var firstRating models.Rating
	decodeBody(t, w, &firstRating)
	if !firstRating.Rating {
		t.Error("first rating = false, want true")
	}

	w = doJSON(t, r, http.MethodPost, path, token, gin.H{"rating": false})
	if w.Code != http.StatusOK {
		t.Fatalf("second rate returned %d: %s", w.Code, w.Body.String())
	}
	var secondRating models.Rating
	decodeBody(t, w, &secondRating)
	if secondRating.Rating {
		t.Error("second rating = true, want false")
	}
	if secondRating.ID != firstRating.ID {
		t.Errorf("second rate returned row %d, want existing row %d", secondRating.ID, firstRating.ID)
	}

	var count int64
	db.Model(&models.Rating{}).Where("response_id = ?", res.ID).Count(&count)
	if count != 1 {
		t.Errorf("got %d rating rows, want exactly 1", count)
	}

	var stored models.Rating
	if err := db.Where("response_id = ?", res.ID).First(&stored).Error; err != nil {
		t.Fatalf("load rating: %v", err)
	}
	if stored.Rating {
		t.Error("stored rating = true, want latest value false")
	}
}

func TestRateValidation(t *testing.T) {
	r, db := newTestServer(t)
	_, token := loginAs(t, r, db, "user1@example.com")
	b := createBrand(t, r, token, "Nike", "")
	res := generateResponse(t, r, token, b.ID)

	path := fmt.Sprintf("/api/responses/%d/rate", res.ID)

	for name, body := range map[string]any{
		"missing field": gin.H{},
		"string value":  gin.H{"rating": "yes"},
		"number value":  gin.H{"rating": 1},
	} {
		w := doJSON(t, r, http.MethodPost, path, token, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", name, w.Code)
		}
	}
}

func TestRateForeignResponseReturns404(t *testing.T) {
	r, db := newTestServer(t)
	_, token := loginAs(t, r, db, "user1@example.com")
	_, otherToken := loginAs(t, r, db, "user2@example.com")

	b := createBrand(t, r, otherToken, "Puma", "")
	res := generateResponse(t, r, otherToken, b.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/responses/%d/rate", res.ID), token, gin.H{"rating": true})
	if w.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", w.Code)
	}
}

func TestResponsesRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/responses/brand/1", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", w.Code)
	}
}

// End-to-end walk of the primary flow: login, create a brand,
// generate a response, rate it, list it back.
func TestPrimaryScenario(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "user1@example.com", "password123")

	token := login(t, r, "user1@example.com", "password123")

	b := createBrand(t, r, token, "Nike", "")
	if b.ID == 0 || b.UserID == 0 || b.Prompt != "" {
		t.Fatalf("created brand = %+v", b)
	}

	res := generateResponse(t, r, token, b.ID)
	if res.ResponseText == "" {
		t.Fatal("generated response has empty text")
	}

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/responses/%d/rate", res.ID), token, gin.H{"rating": true})
	if w.Code != http.StatusOK {
		t.Fatalf("rate returned %d: %s", w.Code, w.Body.String())
	}
	var rating models.Rating
	decodeBody(t, w, &rating)
	if !rating.Rating {
		t.Error("rating = false, want true")
	}

	rows := listResponses(t, r, token, b.ID)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Rating == nil || !*rows[0].Rating {
		t.Errorf("listed rating = %v, want true", rows[0].Rating)
	}
}
