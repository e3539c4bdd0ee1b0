package cocktaildb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const margaritaPayload = `{"drinks":[{
	"idDrink":"11007",
	"strDrink":"Margarita",
	"strCategory":"Ordinary Drink",
	"strDrinkThumb":"https://img/margarita.jpg",
	"strInstructions":"Rub the rim of the glass with the lime slice.",
	"strTags":"IBA,ContemporaryClassic",
	"strGlass":"Cocktail glass",
	"strIngredient1":"Tequila","strMeasure1":"1 1/2 oz ",
	"strIngredient2":"Triple sec","strMeasure2":"1/2 oz ",
	"strIngredient3":"Salt","strMeasure3":null,
	"strIngredient4":null,"strMeasure4":null
}]}`

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("parseBaseURL(\"\") = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com/api/json/v1/1?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "/api/json/v1/1/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchShardEncodesLetterAndNormalizes(t *testing.T) {
	t.Parallel()

	var gotPath, gotLetter, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLetter = r.URL.Query().Get("f")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(margaritaPayload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL + "/api/json/v1/1"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	records, err := c.FetchShard(ctx, "m")
	if err != nil {
		t.Fatalf("FetchShard returned error: %v", err)
	}
	if gotPath != "/api/json/v1/1/search.php" {
		t.Fatalf("request path = %q, want /api/json/v1/1/search.php", gotPath)
	}
	if gotLetter != "m" {
		t.Fatalf("f query = %q, want m", gotLetter)
	}
	if !strings.HasPrefix(gotUserAgent, "barcart/") {
		t.Fatalf("User-Agent = %q, want barcart/*", gotUserAgent)
	}
	if len(records) != 1 {
		t.Fatalf("FetchShard returned %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.ID != "11007" || rec.Name != "Margarita" || rec.Category != "Ordinary Drink" {
		t.Fatalf("record = %+v, want Margarita 11007", rec)
	}
	want := []string{"1 1/2 oz Tequila", "1/2 oz Triple sec", "Salt"}
	if strings.Join(rec.Ingredients, "|") != strings.Join(want, "|") {
		t.Fatalf("Ingredients = %q, want %q", rec.Ingredients, want)
	}
}

func TestClient_NullDrinksIsEmptyNotError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("f") {
		case "x":
			_, _ = w.Write([]byte(`{"drinks":null}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	for _, letter := range []string{"x", "u"} {
		records, err := c.FetchShard(context.Background(), letter)
		if err != nil {
			t.Fatalf("FetchShard(%s) returned error: %v", letter, err)
		}
		if len(records) != 0 {
			t.Fatalf("FetchShard(%s) = %d records, want 0", letter, len(records))
		}
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("f") {
		case "a":
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchShard(context.Background(), "a")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchShard(a) error = %v, want decode response error", err)
	}

	_, err = c.FetchShard(context.Background(), "b")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchShard(b) error = %v, want status 500 error", err)
	}
}

func TestClient_FetchShardRequiresKey(t *testing.T) {
	c, err := NewClient(Options{BaseURL: "127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchShard(context.Background(), "  "); err == nil {
		t.Fatalf("FetchShard(blank) returned nil error, want error")
	}
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"drinks":null}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL, RequestsPerSecond: 0.001})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.FetchShard(context.Background(), "a"); err != nil {
		t.Fatalf("first FetchShard returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.FetchShard(ctx, "b")
	if err == nil || !strings.Contains(err.Error(), "rate limit") {
		t.Fatalf("second FetchShard error = %v, want rate limit error", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("server hits = %d, want 1", got)
	}
}
