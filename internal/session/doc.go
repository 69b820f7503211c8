// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the conversation coordinator.
//
// The Coordinator is the seam between the UI and everything stateful: it owns
// the transcript, runs the resume-or-restart flow against the history store,
// drives streamed sends through the assist session, and raises the off-screen
// reply notification. The UI never mutates conversation state directly; it
// calls BeginSend / Stream / Continue / StartNew and renders the snapshots it
// gets back.
//
// Invariants the coordinator maintains:
//
//   - At most one send is in flight; BeginSend rejects overlap.
//   - The loading flag always clears when a send settles, success or failure.
//   - Mid-stream the transcript holds exactly one message past the prompt.
//   - History is persisted only once the message sequence has settled.
package session
