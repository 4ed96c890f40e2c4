package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/hierarchy"
	"github.com/neoenergia/neoview/internal/llm"
	"github.com/neoenergia/neoview/internal/llm/providers"
)

type mockProvider struct {
	chatResponse string
	chatErr      error
	lastMessages []llm.Message
	chatCalls    int
}

func (m *mockProvider) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	m.chatCalls++
	m.lastMessages = append([]llm.Message(nil), messages...)
	if m.chatErr != nil {
		return "", m.chatErr
	}
	if m.chatResponse == "" {
		return "mock-response", nil
	}
	return m.chatResponse, nil
}

func (m *mockProvider) Name() string { return "mock" }

func newTestServer(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	store := catalog.NewMemoryStore()
	if err := catalog.SeedDemo(context.Background(), store); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	if provider == nil {
		provider = &mockProvider{}
	}
	return NewServer(hierarchy.NewSeededStore(), store, provider)
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func login(t *testing.T, srv *Server, email, password string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/v1/search?q=DEC", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Results []json.RawMessage `json:"results"`
		Total   int               `json:"total"`
	}
	decodeBody(t, rec, &resp)
	if resp.Total != 24 {
		t.Fatalf("expected 24 total hits, got %d", resp.Total)
	}
	if len(resp.Results) != 8 {
		t.Fatalf("expected default cap of 8 results, got %d", len(resp.Results))
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/search?q=d", "", nil)
	decodeBody(t, rec, &resp)
	if resp.Total != 0 {
		t.Fatalf("short query must return no hits, got %d", resp.Total)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/search?q=DEC&limit=abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}

func TestHierarchyEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/v1/hierarchy/companies", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var companies struct {
		Companies []hierarchy.Company `json:"companies"`
	}
	decodeBody(t, rec, &companies)
	if len(companies.Companies) != 5 {
		t.Fatalf("expected 5 companies, got %d", len(companies.Companies))
	}

	path := "/v1/hierarchy/companies/coelba/superintendences/sup-operacoes-ba/managements/ger-manutencao/projects/proj-eficiencia-rede/indicators/ind-dec"
	rec = doJSON(t, srv, http.MethodGet, path, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var ind hierarchy.Indicator
	decodeBody(t, rec, &ind)
	if ind.Name != "DEC - Duração Equivalente por Consumidor" {
		t.Fatalf("unexpected indicator %q", ind.Name)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/hierarchy/companies/celpe", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAISearchEndpoint(t *testing.T) {
	provider := &mockProvider{chatResponse: "ind-dec, ind-fec"}
	srv := newTestServer(t, provider)

	rec := doJSON(t, srv, http.MethodPost, "/v1/search/ai", "", map[string]string{"query": "queda de luz"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Results    []struct{ ID string `json:"id"` } `json:"results"`
		AIResponse string                            `json:"ai_response"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Results) != 2 || resp.Results[0].ID != "ind-dec" {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/search/ai", "", map[string]string{"query": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank query, got %d", rec.Code)
	}
}

func TestAISearchUpstreamErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{providers.ErrRateLimited, http.StatusTooManyRequests},
		{providers.ErrQuotaExceeded, http.StatusPaymentRequired},
		{providers.ErrTimeout, http.StatusGatewayTimeout},
		{providers.ErrUpstreamUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		srv := newTestServer(t, &mockProvider{chatErr: tc.err})
		rec := doJSON(t, srv, http.MethodPost, "/v1/search/ai", "", map[string]string{"query": "satisfação"})
		if rec.Code != tc.status {
			t.Fatalf("error %v: expected status %d, got %d", tc.err, tc.status, rec.Code)
		}
	}
}

func TestChatEndpoint(t *testing.T) {
	provider := &mockProvider{chatResponse: "O DEC atual é 12.5 horas."}
	srv := newTestServer(t, provider)

	rec := doJSON(t, srv, http.MethodPost, "/v1/chat", "", map[string]string{"prompt": "qual o valor do DEC?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Answer   string       `json:"answer"`
		Sources  []chatSource `json:"sources"`
		Provider string       `json:"provider"`
	}
	decodeBody(t, rec, &resp)
	if resp.Answer != "O DEC atual é 12.5 horas." {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
	if resp.Provider != "mock" {
		t.Fatalf("unexpected provider %q", resp.Provider)
	}
	if len(resp.Sources) == 0 {
		t.Fatal("expected context sources for a DEC prompt")
	}
	if len(provider.lastMessages) < 3 {
		t.Fatalf("expected system, context and user messages, got %d", len(provider.lastMessages))
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/chat", "", map[string]string{"prompt": " "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank prompt, got %d", rec.Code)
	}
}

func TestRankingsAndViews(t *testing.T) {
	srv := newTestServer(t, nil)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, srv, http.MethodPost, "/v1/reports/rep-9/view", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("record view: expected 200, got %d", rec.Code)
		}
	}

	rec := doJSON(t, srv, http.MethodGet, "/v1/rankings", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Rankings []struct {
			Report hierarchy.Report `json:"report"`
			Views  int64            `json:"views"`
			Rank   int              `json:"rank"`
		} `json:"rankings"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Rankings) != 5 {
		t.Fatalf("expected top 5, got %d", len(resp.Rankings))
	}
	if resp.Rankings[0].Report.ID != "rep-9" || resp.Rankings[0].Views != 3 {
		t.Fatalf("unexpected leader: %+v", resp.Rankings[0])
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/rankings?company_id=coelba", "", nil)
	decodeBody(t, rec, &resp)
	for _, entry := range resp.Rankings {
		if entry.Report.ID == "rep-9" {
			t.Fatal("elektro report leaked into coelba ranking")
		}
	}
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "admin@neoview.com",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	token := login(t, srv, "analista@neoview.com", "analista123")

	rec = doJSON(t, srv, http.MethodGet, "/v1/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var me struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &me)
	if me.ID != "usr-003" {
		t.Fatalf("unexpected user %q", me.ID)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/auth/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/v1/auth/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestReportLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t, nil)

	// Mutations need a session.
	rec := doJSON(t, srv, http.MethodPost, "/v1/reports", "", map[string]string{"name": "x.pdf"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	analyst := login(t, srv, "analista@neoview.com", "analista123")
	rec = doJSON(t, srv, http.MethodPost, "/v1/reports", analyst, map[string]interface{}{
		"indicator_id": "ind-dec",
		"name":         "DEC Janeiro 2025.pdf",
		"file_size":    2048,
		"mime_type":    "application/pdf",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created catalog.ReportEntity
	decodeBody(t, rec, &created)
	if created.Status != catalog.StatusDraft || created.UploadedBy != "usr-003" {
		t.Fatalf("unexpected created report: %+v", created)
	}

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/v1/reports/%s/versions", created.ID), analyst, map[string]interface{}{
		"file_url":  "/files/dec-v2.pdf",
		"file_size": 4096,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("new version: expected 200, got %d", rec.Code)
	}
	var versioned catalog.ReportEntity
	decodeBody(t, rec, &versioned)
	if versioned.Version != 2 {
		t.Fatalf("expected version 2, got %d", versioned.Version)
	}

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/v1/reports/%s/submit", created.ID), analyst, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/v1/reports/%s/submit", created.ID), analyst, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("double submit: expected 409, got %d", rec.Code)
	}
}

func TestApprovalEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	analyst := login(t, srv, "analista@neoview.com", "analista123")
	supervisor := login(t, srv, "supervisor@neoview.com", "super123")

	// Analysts cannot act on the queue.
	rec := doJSON(t, srv, http.MethodGet, "/v1/approvals/pending", analyst, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for analyst, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/approvals/pending", supervisor, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var pending struct {
		Pending []struct {
			ID            string `json:"id"`
			IndicatorName string `json:"indicator_name"`
			SubmitterName string `json:"submitter_name"`
		} `json:"pending"`
	}
	decodeBody(t, rec, &pending)
	if len(pending.Pending) != 1 || pending.Pending[0].ID != "rep-002" {
		t.Fatalf("unexpected queue: %+v", pending.Pending)
	}
	if pending.Pending[0].SubmitterName != "João Santos" {
		t.Fatalf("unexpected submitter %q", pending.Pending[0].SubmitterName)
	}

	// Blank rejection comment is refused with no state change.
	rec = doJSON(t, srv, http.MethodPost, "/v1/approvals/rep-002/reject", supervisor, map[string]string{"comments": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/approvals/rep-002/approve", supervisor, map[string]string{"comments": "Aprovado."})
	if rec.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/approvals/rep-002/approve", supervisor, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second approve: expected 409, got %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/approvals/stats", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", rec.Code)
	}
	var stats struct {
		Pending       int `json:"pending"`
		ApprovedToday int `json:"approved_today"`
	}
	decodeBody(t, rec, &stats)
	if stats.Pending != 0 || stats.ApprovedToday != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/approvals/history?report_id=rep-002", "", nil)
	var history struct {
		History []catalog.Approval `json:"history"`
	}
	decodeBody(t, rec, &history)
	if len(history.History) != 1 || history.History[0].Status != catalog.StatusApproved {
		t.Fatalf("unexpected history: %+v", history.History)
	}
}

func TestLogsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv, http.MethodGet, "/v1/logs", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
