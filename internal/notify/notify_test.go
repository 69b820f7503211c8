// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBellWritesBel(t *testing.T) {
	var buf bytes.Buffer
	b := &Bell{Out: &buf}

	require.NoError(t, b.Play(KindReply))
	require.Equal(t, "\a", buf.String())
}

func TestNop(t *testing.T) {
	require.NoError(t, Nop{}.Play(KindError))
}
