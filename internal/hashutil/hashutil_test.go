package hashutil_test

import (
	"testing"

	"lingua/backend/internal/hashutil"

	"github.com/stretchr/testify/require"
)

func TestSHA256Hex_TrimsInput(t *testing.T) {
	const hello = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	require.Equal(t, hello, hashutil.SHA256Hex("hello"))
	require.Equal(t, hello, hashutil.SHA256Hex("  hello\n"))
}

func TestShortHex(t *testing.T) {
	full := hashutil.SHA256Hex("hello")
	require.Equal(t, full[:16], hashutil.ShortHex("hello", 16))
	require.Equal(t, full, hashutil.ShortHex("hello", 0))
	require.Equal(t, full, hashutil.ShortHex("hello", 100))
}
