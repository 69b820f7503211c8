// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assist

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
)

// =============================================================================
// STREAM TYPES
// =============================================================================

// Chunk is one increment of a streamed reply.
type Chunk struct {
	// Content is the text fragment carried by this chunk.
	Content string

	// Done marks the final chunk of the reply.
	Done bool
}

// streamLine is the NDJSON wire format of a single streamed line.
type streamLine struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Done  bool   `json:"done"`
	Error string `json:"error,omitempty"`
}

// ChunkHandler receives each chunk in arrival order, on a single goroutine.
type ChunkHandler func(Chunk)

// =============================================================================
// STREAM READER
// =============================================================================

// StreamReader consumes a newline-delimited JSON response body and delivers
// chunks to a handler until the stream reports done or the context ends.
type StreamReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewStreamReader wraps a streaming response body.
func NewStreamReader(body io.ReadCloser) *StreamReader {
	scanner := bufio.NewScanner(body)
	// Replies can carry long paragraphs in a single line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &StreamReader{
		scanner: scanner,
		closer:  body,
	}
}

// Process reads the stream to completion, invoking handler for every chunk.
// It returns the accumulated reply text. The body is always closed.
func (r *StreamReader) Process(ctx context.Context, handler ChunkHandler) (string, error) {
	defer r.closer.Close()

	var full string
	for r.scanner.Scan() {
		select {
		case <-ctx.Done():
			return full, &ClientError{Type: ErrTypeTimeout, Message: "stream cancelled", Cause: ctx.Err()}
		default:
		}

		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var sl streamLine
		if err := json.Unmarshal(line, &sl); err != nil {
			// Malformed lines are skipped; the rest of the stream is still good.
			continue
		}
		if sl.Error != "" {
			return full, &ClientError{Type: ErrTypeInvalidResponse, Message: sl.Error}
		}

		chunk := Chunk{Content: sl.Message.Content, Done: sl.Done}
		if chunk.Content != "" || chunk.Done {
			full += chunk.Content
			if handler != nil {
				handler(chunk)
			}
		}

		if sl.Done {
			return full, nil
		}
	}

	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return full, ErrTimeout
		}
		return full, &ClientError{Type: ErrTypeUnavailable, Message: "stream interrupted", Cause: err}
	}

	// Body ended without a done marker. Treat what we have as the reply so a
	// dropped connection still leaves a usable partial answer.
	return full, nil
}
