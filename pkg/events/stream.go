package events

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Writer frames StreamEvents as SSE records on an HTTP response. Ids are a
// per-stream decimal counter starting at 1; when the client supplied a
// Last-Event-ID, frames up to and including that id are counted but not
// written, so a resumed stream picks up exactly where it left off.
type Writer struct {
	w       io.Writer
	flusher http.Flusher
	next    int64
	skipTo  int64
}

// NewWriter creates an SSE writer. lastEventID is the raw client-supplied
// value; anything non-numeric disables resume.
func NewWriter(w io.Writer, lastEventID string) *Writer {
	sw := &Writer{w: w}
	if f, ok := w.(http.Flusher); ok {
		sw.flusher = f
	}
	if lastEventID != "" {
		if id, err := strconv.ParseInt(lastEventID, 10, 64); err == nil && id > 0 {
			sw.skipTo = id
		}
	}
	return sw
}

// Send assigns the next id to the event and writes one SSE frame. Suppressed
// frames (id <= Last-Event-ID) still consume their id.
func (sw *Writer) Send(ev StreamEvent) error {
	sw.next++
	if sw.next <= sw.skipTo {
		return nil
	}

	data, err := json.Marshal(ev.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	if _, err := fmt.Fprintf(sw.w, "id: %d\nevent: %s\ndata: %s\n\n", sw.next, ev.Type, data); err != nil {
		return fmt.Errorf("failed to write event frame: %w", err)
	}
	if sw.flusher != nil {
		sw.flusher.Flush()
	}
	return nil
}

// LastID returns the id of the most recently assigned frame.
func (sw *Writer) LastID() int64 {
	return sw.next
}
