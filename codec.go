package vfsh

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64Marker is the content prefix signaling that the remainder of the
// stored value is base64-encoded text.
const Base64Marker = "base64:"

// Decode returns the display text for raw stored content. Content carrying
// the base64 marker prefix is decoded and interpreted as UTF-8; anything
// else passes through unchanged.
//
// A malformed payload degrades to a visible error string instead of
// failing, so reads stay total at this layer.
func Decode(raw string) string {
	payload, ok := strings.CutPrefix(raw, Base64Marker)
	if !ok {
		return raw
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Sprintf("base64 decode error: %v", err)
	}
	return string(data)
}
