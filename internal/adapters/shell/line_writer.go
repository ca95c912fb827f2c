package shell

import (
	"bytes"
	"strings"
)

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	emit func(string)
	buf  []byte
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing output that was not terminated by a newline.
func (w *lineWriter) Flush() {
	if len(w.buf) > 0 {
		w.emitLine(w.buf)
	}
	w.buf = nil
}

func (w *lineWriter) emitLine(line []byte) {
	w.emit(strings.TrimSuffix(string(line), "\r"))
}
