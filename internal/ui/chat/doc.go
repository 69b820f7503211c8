// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view: a scrolling transcript, the
// prompt input, and a spinner while a reply streams in.
//
// Streaming rides the channel-command pattern: the send runs on its own
// goroutine pushing transcript snapshots into a channel, and a listener
// command converts each one into a StreamChunkMsg for the update loop. The
// coordinator remains the single owner of conversation state.
package chat
