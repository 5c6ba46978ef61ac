package vfsh

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_PlainTextPassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", Decode("hello world"))
	assert.Equal(t, "", Decode(""))
	// Marker must be a prefix, not just present
	assert.Equal(t, "see base64:abcd", Decode("see base64:abcd"))
}

// TestDecode_RoundTrip checks that a marker-prefixed encoding of text T
// decodes back to exactly T.
func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"hi there",
		"line one\nline two\n",
		"кириллица и UTF-8 ✓",
		"",
	} {
		raw := Base64Marker + base64.StdEncoding.EncodeToString([]byte(text))
		assert.Equal(t, text, Decode(raw))
	}
}

// TestDecode_MalformedPayload checks that a broken payload degrades to a
// visible error string instead of failing the read.
func TestDecode_MalformedPayload(t *testing.T) {
	t.Parallel()

	got := Decode("base64:!!!not-base64!!!")
	assert.Contains(t, got, "base64 decode error")
}
