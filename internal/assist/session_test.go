// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/sereno-tui/internal/model"
)

// streamServer answers /api/chat with word-by-word NDJSON chunks and records
// the request bodies it saw.
func streamServer(t *testing.T, words []string) (*httptest.Server, *[]chatRequest) {
	t.Helper()
	var seen []chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			w.WriteHeader(http.StatusOK)
			return
		}
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		w.Header().Set("Content-Type", "application/x-ndjson")
		fl := w.(http.Flusher)
		for _, word := range words {
			fmt.Fprintf(w, `{"message":{"role":"assistant","content":%q},"done":false}`+"\n", word)
			fl.Flush()
		}
		fmt.Fprintln(w, `{"message":{"role":"assistant","content":""},"done":true}`)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func testClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL: baseURL,
		Model:   "test-model",
		// Generous limiter so tests never stall on pacing.
		SendInterval: time.Millisecond,
		SendBurst:    10,
	})
}

// =============================================================================
// SESSION TESTS
// =============================================================================

func TestSendStreamsReply(t *testing.T) {
	srv, _ := streamServer(t, []string{"You are ", "doing fine."})
	sess := testClient(srv.URL).OpenSession(nil)

	var chunks []string
	reply, err := sess.Send(context.Background(), "how am I doing?", func(c Chunk) {
		if c.Content != "" {
			chunks = append(chunks, c.Content)
		}
	})
	require.NoError(t, err)
	require.Equal(t, "You are doing fine.", reply)
	require.Equal(t, []string{"You are ", "doing fine."}, chunks)
}

func TestSendGrowsContext(t *testing.T) {
	srv, seen := streamServer(t, []string{"ok"})
	sess := testClient(srv.URL).OpenSession(nil)

	_, err := sess.Send(context.Background(), "first", nil)
	require.NoError(t, err)
	require.Equal(t, 2, sess.ContextLen(), "prompt and reply recorded")

	_, err = sess.Send(context.Background(), "second", nil)
	require.NoError(t, err)

	// The second request carries the first exchange as context.
	require.Len(t, *seen, 2)
	msgs := (*seen)[1].Messages
	require.Len(t, msgs, 3)
	require.Equal(t, "user", msgs[0].Role)
	require.Equal(t, "first", msgs[0].Content)
	require.Equal(t, "assistant", msgs[1].Role)
	require.Equal(t, "second", msgs[2].Content)
}

func TestOpenSessionSeedsContext(t *testing.T) {
	srv, seen := streamServer(t, []string{"welcome back"})
	initial := model.Transcript{
		model.NewBotMessage("Good evening."),
		model.NewUserMessage("hello"),
	}
	sess := testClient(srv.URL).OpenSession(initial)

	_, err := sess.Send(context.Background(), "I'm back", nil)
	require.NoError(t, err)

	msgs := (*seen)[0].Messages
	require.Len(t, msgs, 3)
	require.Equal(t, "assistant", msgs[0].Role, "bot role maps onto assistant")
	require.Equal(t, "Good evening.", msgs[0].Content)
}

func TestSendEmptyPrompt(t *testing.T) {
	sess := testClient("http://127.0.0.1:0").OpenSession(nil)
	_, err := sess.Send(context.Background(), "", nil)
	require.Error(t, err)
}

func TestSendUnreachable(t *testing.T) {
	// Reserved port; nothing listens here.
	sess := testClient("http://127.0.0.1:1").OpenSession(nil)
	_, err := sess.Send(context.Background(), "hello", nil)
	require.True(t, IsUnavailable(err), "got %v", err)
}

func TestSendNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	sess := testClient(srv.URL).OpenSession(nil)
	_, err := sess.Send(context.Background(), "hello", nil)
	require.Error(t, err)

	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrTypeInvalidResponse, ce.Type)
}

func TestReset(t *testing.T) {
	srv, _ := streamServer(t, []string{"ok"})
	sess := testClient(srv.URL).OpenSession(nil)

	_, err := sess.Send(context.Background(), "hi", nil)
	require.NoError(t, err)
	require.NotZero(t, sess.ContextLen())

	sess.Reset(nil)
	require.Zero(t, sess.ContextLen())
}

// =============================================================================
// CLIENT TESTS
// =============================================================================

func TestCheckReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	require.NoError(t, testClient(srv.URL).CheckReachable(context.Background()))
	require.True(t, IsUnavailable(testClient("http://127.0.0.1:1").CheckReachable(context.Background())))
}

func TestClientErrorIs(t *testing.T) {
	wrapped := &ClientError{Type: ErrTypeTimeout, Message: "while streaming", Cause: context.DeadlineExceeded}
	require.True(t, errors.Is(wrapped, ErrTimeout))
	require.False(t, errors.Is(wrapped, ErrUnavailable))
}

func TestDefaultConfigFill(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{BaseURL: "http://example.test"})
	require.Equal(t, "http://example.test", c.config.BaseURL)
	require.Equal(t, 30*time.Second, c.config.Timeout)
	require.NotNil(t, c.limiter)
}
