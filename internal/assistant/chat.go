package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/youjiac/baseball/internal/config"
	"github.com/youjiac/baseball/internal/logger"
)

const (
	chatTimeout = 2 * time.Minute

	chatNotReadyReply = "系統尚未準備就緒，請稍後再試。"
	chatFailedReply   = "系統處理出現問題，請稍後再試。"

	promptTemplate = "你是CPBL教練助手，請根據以下資料回答問題。請簡潔專業，像教練回答球迷提問。\n\n資料：\n%s\n\n問題：%s\n\n請直接回答："
)

// Chat asks an external Ollama-compatible backend to answer from the
// serialized dataset. The backend is opaque: host and model are
// configuration, and an unreachable backend degrades to a canned reply.
type Chat struct {
	host       string
	model      string
	kb         KnowledgeBase
	httpClient *http.Client
}

// NewChat creates a chat assistant from configuration.
func NewChat(cfg *config.Config, kb KnowledgeBase) *Chat {
	return &Chat{
		host:  strings.TrimRight(cfg.ChatHost, "/"),
		model: cfg.ChatModel,
		kb:    kb,
		httpClient: &http.Client{
			Timeout: chatTimeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Answer responds to one free-text question by prompting the backend with
// the full serialized dataset. It never fails: backend or dataset problems
// produce a canned reply.
func (c *Chat) Answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return askSpecificReply
	}
	if c.host == "" || c.model == "" {
		return chatNotReadyReply
	}

	snap, err := c.kb.Snapshot(ctx)
	if err != nil || snap == nil || len(snap.Teams) == 0 {
		if err != nil {
			logger.Warn("chat dataset unavailable", logger.Fields{"error": err.Error()})
		}
		return notReadyReply
	}

	reply, err := c.send(ctx, fmt.Sprintf(promptTemplate, FormatSnapshot(snap), question))
	if err != nil {
		logger.Error("chat backend request failed", logger.Fields{"host": c.host, "model": c.model}, err)
		return chatFailedReply
	}
	return reply
}

// send performs one /api/chat round trip.
func (c *Chat) send(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat backend error (status %d)", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing chat response: %w", err)
	}
	if strings.TrimSpace(parsed.Message.Content) == "" {
		return "", fmt.Errorf("chat backend returned an empty message")
	}
	return parsed.Message.Content, nil
}
