package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tvly-test" {
			t.Errorf("Authorization = %q", got)
		}
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Query != "TSMC" || req.Topic != "news" || req.SearchDepth != "basic" || req.MaxResults != 5 {
			t.Errorf("request = %+v", req)
		}
		_ = json.NewEncoder(w).Encode(searchResponse{Results: []searchResult{
			{Title: "Capex up", URL: "https://www.reuters.com/a", Content: "short", RawContent: "much longer raw content", PublishedDate: "2025-01-10"},
		}})
	}))
	defer srv.Close()

	c := NewClient("tvly-test", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	resp, err := c.Search(context.Background(), &search.Request{Query: "TSMC"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(resp.Results))
	}
	r := resp.Results[0]
	if r.Content != "much longer raw content" || r.SourceName() != "reuters.com" {
		t.Errorf("Result = %+v", r)
	}
}

func TestClient_SearchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("k", WithEndpoint(srv.URL))
	if _, err := c.Search(context.Background(), &search.Request{Query: "x"}); err == nil {
		t.Error("Search() error = nil, want status error")
	}
}
