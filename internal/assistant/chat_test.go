package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/youjiac/baseball/internal/config"
)

func chatConfig(host string) *config.Config {
	return &config.Config{ChatHost: host, ChatModel: "llama3.1"}
}

func TestChatAnswer(t *testing.T) {
	var received chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: "王柏融是台鋼雄鷹的外野手。"},
		})
	}))
	defer srv.Close()

	chat := NewChat(chatConfig(srv.URL), fixedKB(testSnapshot()))
	got := chat.Answer(context.Background(), "王柏融是誰？")

	if got != "王柏融是台鋼雄鷹的外野手。" {
		t.Errorf("Answer = %q, want the backend reply", got)
	}
	if received.Model != "llama3.1" {
		t.Errorf("model = %q, want llama3.1", received.Model)
	}
	if received.Stream {
		t.Error("expected a non-streaming request")
	}
	if len(received.Messages) != 1 || received.Messages[0].Role != "user" {
		t.Fatalf("unexpected messages: %+v", received.Messages)
	}
	prompt := received.Messages[0].Content
	if !strings.Contains(prompt, "王柏融是誰？") {
		t.Errorf("prompt missing the question:\n%s", prompt)
	}
	if !strings.Contains(prompt, "【台鋼雄鷹】") {
		t.Errorf("prompt missing the serialized dataset:\n%s", prompt)
	}
}

func TestChatAnswerBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	chat := NewChat(chatConfig(srv.URL), fixedKB(testSnapshot()))
	got := chat.Answer(context.Background(), "王柏融是誰？")

	if got != chatFailedReply {
		t.Errorf("Answer = %q, want the degraded reply", got)
	}
}

func TestChatAnswerBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	chat := NewChat(chatConfig(srv.URL), fixedKB(testSnapshot()))
	got := chat.Answer(context.Background(), "王柏融是誰？")

	if got != chatFailedReply {
		t.Errorf("Answer = %q, want the degraded reply", got)
	}
}

func TestChatAnswerWithoutHost(t *testing.T) {
	chat := NewChat(chatConfig(""), fixedKB(testSnapshot()))

	if got := chat.Answer(context.Background(), "王柏融是誰？"); got != chatNotReadyReply {
		t.Errorf("Answer = %q, want the not-ready reply", got)
	}
}

func TestChatAnswerEmptyQuestion(t *testing.T) {
	chat := NewChat(chatConfig("http://localhost:11434"), fixedKB(testSnapshot()))

	if got := chat.Answer(context.Background(), "   "); got != askSpecificReply {
		t.Errorf("Answer = %q, want the ask-for-specificity reply", got)
	}
}
