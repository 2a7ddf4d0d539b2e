package statsview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	var out bytes.Buffer
	s := Start(&out, "127.0.0.1:0")

	assert.Equal(t, "127.0.0.1:0", s.Addr)
	assert.Equal(t, "stats server available at http://127.0.0.1:0/debug/statsview\n", out.String())
	require.NoError(t, s.Stop())
}

func TestAddress(t *testing.T) {
	assert.Equal(t, DefaultAddress, address(""))
	assert.Equal(t, "localhost:9000", address("localhost:9000"))
}
