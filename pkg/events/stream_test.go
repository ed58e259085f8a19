package events

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("frames carry increasing ids", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, "")

		require.NoError(t, w.Send(StreamEvent{Type: StreamTypeChunk, Data: ChunkPayload{Content: "a", FullContent: "a"}}))
		require.NoError(t, w.Send(StreamEvent{Type: StreamTypeComplete, Data: ErrorPayload{Message: "done"}}))

		out := buf.String()
		assert.Contains(t, out, "id: 1\nevent: chunk\n")
		assert.Contains(t, out, "id: 2\nevent: complete\n")
		assert.Equal(t, 2, strings.Count(out, "\n\n"), "one blank line terminates each frame")
		assert.Equal(t, int64(2), w.LastID())
	})

	t.Run("resume suppresses already-delivered frames", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, "2")

		for i := 0; i < 3; i++ {
			require.NoError(t, w.Send(StreamEvent{Type: StreamTypeChunk, Data: ChunkPayload{}}))
		}

		out := buf.String()
		assert.NotContains(t, out, "id: 1\n")
		assert.NotContains(t, out, "id: 2\n")
		assert.Contains(t, out, "id: 3\n", "suppressed frames still consume ids")
	})

	t.Run("garbage last-event-id disables resume", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, "not-a-number")

		require.NoError(t, w.Send(StreamEvent{Type: StreamTypeChunk, Data: ChunkPayload{}}))
		assert.Contains(t, buf.String(), "id: 1\n")
	})

	t.Run("data is json", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, "")

		require.NoError(t, w.Send(StreamEvent{
			Type: StreamTypeTrajectoryEvent,
			Data: TrajectoryEventPayload{EventType: TrajectoryEventTouch, Name: "fractions", Source: "user"},
		}))
		assert.Contains(t, buf.String(), `data: {"eventType":"touch","name":"fractions","source":"user"}`)
	})
}
