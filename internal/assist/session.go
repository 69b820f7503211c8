// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/jeranaias/sereno-tui/internal/model"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// chatRequest is the JSON body of a streamed chat completion request.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// toWireRole maps transcript roles onto the API's role vocabulary.
func toWireRole(r model.Role) string {
	if r == model.RoleBot {
		return "assistant"
	}
	return "user"
}

// =============================================================================
// SESSION
// =============================================================================

// Session carries the rolling conversation context sent with each prompt. The
// coordinator owns the transcript; the session only mirrors it so the model
// sees prior turns.
//
// A Session is safe for concurrent use, though sends are expected to be
// serialized by the caller.
type Session struct {
	client *Client

	mu      sync.Mutex
	context []model.Message
}

// OpenSession creates a session seeded with an existing transcript. Pass nil
// for a fresh conversation.
func (c *Client) OpenSession(initial model.Transcript) *Session {
	s := &Session{client: c}
	if len(initial) > 0 {
		s.context = initial.Clone()
	}
	return s
}

// Reset discards the rolling context, e.g. when the user starts over.
func (s *Session) Reset(initial model.Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = nil
	if len(initial) > 0 {
		s.context = initial.Clone()
	}
}

// ContextLen returns the number of messages the model will see next send.
func (s *Session) ContextLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.context)
}

// =============================================================================
// SEND
// =============================================================================

// Send streams a reply to text, invoking onChunk for each increment in order.
// The prompt and the completed reply are appended to the rolling context on
// success. Send blocks until the stream finishes or fails.
func (s *Session) Send(ctx context.Context, text string, onChunk ChunkHandler) (string, error) {
	if text == "" {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "empty prompt"}
	}

	// Rate limit protects the hosted service; a cancelled wait surfaces as a
	// timeout rather than an opaque limiter error.
	if err := s.client.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeUnknown, Message: "send aborted", Cause: err}
	}

	s.mu.Lock()
	msgs := make([]wireMessage, 0, len(s.context)+1)
	for _, m := range s.context {
		msgs = append(msgs, wireMessage{Role: toWireRole(m.Role), Content: m.Text})
	}
	s.mu.Unlock()
	msgs = append(msgs, wireMessage{Role: "user", Content: text})

	body, err := json.Marshal(chatRequest{
		Model:    s.client.config.Model,
		Messages: msgs,
		Stream:   true,
	})
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.client.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ErrUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return "", &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "companion service returned " + resp.Status,
		}
	}

	reply, err := NewStreamReader(resp.Body).Process(ctx, onChunk)
	if err != nil {
		return reply, err
	}

	s.mu.Lock()
	s.context = append(s.context, model.NewUserMessage(text), model.NewBotMessage(reply))
	s.mu.Unlock()

	return reply, nil
}
