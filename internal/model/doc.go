// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package model contains the data structures for chat messages and transcripts.

A Message pairs a Role (user or bot) with text. A Transcript is an ordered
sequence of messages with two explicit operations:

  - Append adds a message and returns a new transcript value.
  - ReplaceLast swaps the trailing message's text and returns a new value.

Streamed replies are accumulated by appending one bot message on the first
chunk and replacing its text with the running concatenation on every later
chunk, so the message count never grows mid-stream.

Transcripts serialize to JSON for local persistence; see internal/history.
*/
package model
