package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeURIRoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"a+b=c",
		"100%",
		"tab\tnewline\n",
		"日本語",
		"",
	}
	for _, s := range cases {
		encoded := encodeURI(s)
		decoded, err := decodeURI(encoded)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}

func TestEncodeURILeavesSafeSetAlone(t *testing.T) {
	safe := "abcZYX019-_.~ !*'();/?:@&=+$,#"
	assert.Equal(t, safe, encodeURI(safe))
}

func TestEncodeURIEscapesUnsafe(t *testing.T) {
	assert.Equal(t, "100%25", encodeURI("100%"))
	assert.Equal(t, "%E6%97%A5", encodeURI("日"))
}

func TestDecodeURIRejectsMalformedEscapes(t *testing.T) {
	_, err := decodeURI("%")
	assert.Error(t, err)
	_, err = decodeURI("%zz")
	assert.Error(t, err)
}

func TestDecodeURINeverFoldsPlusToSpace(t *testing.T) {
	decoded, err := decodeURI("a+b")
	require.NoError(t, err)
	assert.Equal(t, "a+b", decoded)
}
