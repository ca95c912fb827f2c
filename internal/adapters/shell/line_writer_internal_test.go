package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWriter(t *testing.T) {
	var lines []string
	w := newLineWriter(func(s string) { lines = append(lines, s) })

	_, _ = w.Write([]byte("first\r\nsec"))
	_, _ = w.Write([]byte("ond\nthi"))
	assert.Equal(t, []string{"first", "second"}, lines)

	w.Flush()
	assert.Equal(t, []string{"first", "second", "thi"}, lines)

	w.Flush()
	assert.Len(t, lines, 3)
}
