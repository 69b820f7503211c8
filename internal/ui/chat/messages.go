// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/sereno-tui/internal/model"
)

// =============================================================================
// STREAM MESSAGES
// =============================================================================

// StreamChunkMsg carries a fresh transcript snapshot mid-stream. The channels
// ride along so Update can re-arm the listener for the next chunk.
type StreamChunkMsg struct {
	Transcript model.Transcript

	updates <-chan model.Transcript
	done    <-chan error
}

// StreamDoneMsg reports a settled send.
type StreamDoneMsg struct {
	Err error
}
