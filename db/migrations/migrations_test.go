package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	v, err := Latest()
	require.NoError(t, err)
	require.Equal(t, uint(1), v)
}
