package qr

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncode(t *testing.T) {
	t.Parallel()

	png, dataURI, err := Encode("0b54c9a2-5f5a-4a35-8b2a-7a3f2b1d9c10")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, pngMagic), "payload is not a PNG")
	require.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, png, decoded, "data URI does not embed the same PNG")
}

func TestEncodeEmptyContent(t *testing.T) {
	t.Parallel()

	_, _, err := Encode("")
	assert.Error(t, err)
}
