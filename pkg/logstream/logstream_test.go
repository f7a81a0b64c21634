package logstream

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch <-chan string) []string {
	var out []string
	for line := range ch {
		out = append(out, line)
	}
	return out
}

func available(ch <-chan string) []string {
	var out []string
	for {
		select {
		case line, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, line)
		default:
			return out
		}
	}
}

func TestHub_ReplayThenLiveTail(t *testing.T) {
	h := NewHub()
	h.Write("exec-1", "status:starting strategy=SingleShot")
	h.Write("exec-1", "calling model")

	ch, cancel := h.Subscribe("exec-1")
	defer cancel()

	h.Write("exec-1", "parsing output")
	h.Complete("exec-1")

	lines := drain(ch)
	assert.Equal(t, []string{
		"status:starting strategy=SingleShot",
		"calling model",
		"parsing output",
	}, lines)
}

func TestHub_LateSubscriberGetsReplayAndClose(t *testing.T) {
	h := NewHub()
	for i := range 5 {
		h.Write("exec-1", fmt.Sprintf("line-%d", i))
	}
	h.Complete("exec-1")

	ch, cancel := h.Subscribe("exec-1")
	defer cancel()

	lines := drain(ch)
	require.Len(t, lines, 5)
	assert.Equal(t, "line-0", lines[0])
	assert.Equal(t, "line-4", lines[4])
}

func TestHub_RingKeepsLastLines(t *testing.T) {
	h := NewHub()
	for i := range 200 {
		h.Write("exec-1", fmt.Sprintf("line-%d", i))
	}

	ch, cancel := h.Subscribe("exec-1")
	defer cancel()
	h.Complete("exec-1")

	lines := drain(ch)
	require.Len(t, lines, ringSize)
	assert.Equal(t, "line-72", lines[0])
	assert.Equal(t, "line-199", lines[len(lines)-1])
}

func TestHub_SlowSubscriberGetsOverflowMarker(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("exec-1")
	defer cancel()

	// Fill the subscriber buffer and then some, without reading.
	capacity := ringSize + subscriberBuffer
	overflow := 10
	for i := range capacity + overflow {
		h.Write("exec-1", fmt.Sprintf("line-%d", i))
	}

	buffered := available(ch)
	require.Len(t, buffered, capacity)
	assert.Equal(t, fmt.Sprintf("line-%d", capacity-1), buffered[len(buffered)-1])

	// With room freed, the next write is preceded by the overflow marker.
	h.Write("exec-1", "line-after-gap")
	h.Complete("exec-1")

	rest := drain(ch)
	require.Len(t, rest, 2)
	assert.Equal(t, fmt.Sprintf("status:overflow dropped=%d", overflow), rest[0])
	assert.Equal(t, "line-after-gap", rest[1])
}

func TestHub_CancelDetachesSubscriber(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("exec-1")
	cancel()

	// Writes after cancel must not panic and the channel is closed.
	h.Write("exec-1", "line")
	_, ok := <-ch
	assert.False(t, ok)

	// A second cancel is a no-op.
	cancel()
}

func TestHub_CompleteIsIdempotent(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("exec-1")
	defer cancel()

	h.Complete("exec-1")
	h.Complete("exec-1")
	h.Write("exec-1", "ignored after completion")

	assert.Empty(t, drain(ch))
}

func TestHub_RemoveClearsBuffer(t *testing.T) {
	h := NewHub()
	h.Write("exec-1", "line")
	h.Complete("exec-1")
	h.Remove("exec-1")

	ch, cancel := h.Subscribe("exec-1")
	defer cancel()
	assert.Empty(t, available(ch))
}

func TestHub_IndependentStreams(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe("exec-1")
	ch2, cancel2 := h.Subscribe("exec-2")
	defer cancel1()
	defer cancel2()

	h.Write("exec-1", "one")
	h.Write("exec-2", "two")
	h.Complete("exec-1")
	h.Complete("exec-2")

	assert.Equal(t, []string{"one"}, drain(ch1))
	assert.Equal(t, []string{"two"}, drain(ch2))
}
