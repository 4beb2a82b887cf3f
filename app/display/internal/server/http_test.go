package server

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/iWorld-y/signal_pulse/app/display/internal/conf"
	"github.com/iWorld-y/signal_pulse/app/display/internal/domain"
	"github.com/iWorld-y/signal_pulse/app/display/internal/service"
	"github.com/iWorld-y/signal_pulse/app/display/internal/usecase"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
)

type stubQuerier struct{}

func (stubQuerier) Query(_ context.Context, query, _ string) (*domain.Briefing, error) {
	return &domain.Briefing{ID: "run-1", Query: query, Format: "json", Attempts: 1, Raw: "x", Document: report.Parse("x")}, nil
}

func newTestServer(t *testing.T, auth *conf.Auth, withEngine bool) nethttp.Handler {
	t.Helper()
	uc := usecase.NewPulseUseCase(nil, log.DefaultLogger)
	if withEngine {
		uc = usecase.NewPulseUseCase(stubQuerier{}, log.DefaultLogger)
	}
	return NewHTTPServer(&conf.Server{Http: &conf.HTTP{Addr: ":0"}}, auth, service.NewPulseService(uc, log.DefaultLogger), log.DefaultLogger)
}

func post(h nethttp.Handler, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTP_Blocks(t *testing.T) {
	h := newTestServer(t, nil, false)
	rec := post(h, "/v1/blocks", `{"text":"🟦 Pulse\nSignal Strength: 120"}`, "")
	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var got struct {
		Blocks []block.View `json:"blocks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Blocks) != 2 || got.Blocks[1].Score == nil || *got.Blocks[1].Score != 100 {
		t.Errorf("blocks = %+v", got.Blocks)
	}
}

func TestHTTP_Report(t *testing.T) {
	h := newTestServer(t, nil, false)
	rec := post(h, "/v1/report", `{"raw":"{\"sections\":[{\"id\":\"ceo\",\"title\":\"CEO\",\"text\":\"Hold.\"}]}"}`, "")
	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var got report.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Origin != report.OriginJSON || len(got.Sections) != 1 || got.Sections[0].NarrativeText != "Hold." {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestHTTP_QueryWithoutEngine(t *testing.T) {
	h := newTestServer(t, nil, false)
	if rec := post(h, "/v1/query", `{"query":"chips"}`, ""); rec.Code != 503 {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if rec := post(h, "/v1/query", `{"query":""}`, ""); rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHTTP_QueryAuth(t *testing.T) {
	const key = "secret"
	h := newTestServer(t, &conf.Auth{JwtKey: key}, true)

	if rec := post(h, "/v1/query", `{"query":"chips"}`, ""); rec.Code != 401 {
		t.Errorf("status without token = %d, want 401", rec.Code)
	}

	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(key))
	if err != nil {
		t.Fatal(err)
	}
	rec := post(h, "/v1/query", `{"query":"chips"}`, token)
	if rec.Code != 200 {
		t.Fatalf("status with token = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"id":"run-1"`) {
		t.Errorf("body = %s", rec.Body)
	}

	// 解析接口不需要鉴权
	if rec := post(h, "/v1/blocks", `{"text":"x"}`, ""); rec.Code != 200 {
		t.Errorf("blocks status = %d, want 200", rec.Code)
	}
}

func TestHTTP_Index(t *testing.T) {
	h := newTestServer(t, nil, false)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), "SignalPulse Preview") {
		t.Errorf("index status = %d", rec.Code)
	}
}
