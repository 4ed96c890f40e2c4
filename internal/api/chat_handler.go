// File path: internal/api/chat_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/common/telemetry"
	"github.com/neoenergia/neoview/internal/llm"
	"github.com/neoenergia/neoview/internal/search"
)

const chatSystemPrompt = "Você é o assistente do NeoView, o painel de indicadores das distribuidoras Neoenergia. " +
	"Responda em português, de forma curta e objetiva, sobre indicadores de qualidade " +
	"de fornecimento (DEC, FEC, perdas, satisfação) e seus relatórios. " +
	"Baseie a resposta nos trechos de contexto fornecidos quando existirem; " +
	"se o contexto não cobrir a pergunta, diga isso antes de especular."

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatSource struct {
	Type string   `json:"type"`
	Name string   `json:"name"`
	Path []string `json:"path"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("prompt required"))
		return
	}
	logger.Info("api: chat request received", "prompt_length", len(req.Prompt))

	snippets, sources := s.collectContext(req.Prompt, 5)
	messages := []llm.Message{{Role: "system", Content: chatSystemPrompt}}
	if len(snippets) > 0 {
		messages = append(messages, llm.Message{
			Role:    "system",
			Content: "Trechos de contexto:\n" + strings.Join(snippets, "\n"),
		})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Prompt})

	start := time.Now()
	answer, err := s.provider.Chat(ctx, messages)
	telemetry.RecordAssistantCall("chat", time.Since(start), err != nil)
	if err != nil {
		logger.Error("api: chat completion failed", "error", err)
		writeDomainError(w, err)
		return
	}
	logger.Info("api: chat completion succeeded", "provider", s.provider.Name())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"answer":   answer,
		"sources":  sources,
		"provider": s.provider.Name(),
	})
}

// collectContext turns search hits for the prompt into prompt snippets plus
// the source list echoed back to the client. Indicator hits are preferred;
// duplicate branches of the tree collapse to one snippet.
func (s *Server) collectContext(prompt string, limit int) ([]string, []chatSource) {
	if limit <= 0 {
		limit = 5
	}
	var snippets []string
	var sources []chatSource
	seen := make(map[string]struct{})
	for _, hit := range s.walker.Search(prompt) {
		if hit.Type != search.TypeIndicator || hit.Indicator == nil {
			continue
		}
		key := strings.ToLower(hit.Indicator.ID + "|" + hit.Indicator.Name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		snippets = append(snippets, fmt.Sprintf("[%d] %s: valor atual %s %s (tendência %s). Localização: %s.",
			len(snippets)+1, hit.Indicator.Name, hit.Indicator.Value, hit.Indicator.Unit,
			hit.Indicator.Trend, strings.Join(hit.Path, " > ")))
		sources = append(sources, chatSource{
			Type: string(hit.Type),
			Name: hit.Indicator.Name,
			Path: hit.Path,
		})
		if len(snippets) >= limit {
			break
		}
	}
	return snippets, sources
}
