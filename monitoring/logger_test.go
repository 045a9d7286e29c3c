package monitoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	Logf("world %d ready", 42)
	assert.Equal(t, []string{"world 42 ready"}, lines)

	SetLogger(nil)
	Logf("dropped")
	assert.Len(t, lines, 1)
}
