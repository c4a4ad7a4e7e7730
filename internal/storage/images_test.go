package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")
	jpegHeader = []byte("\xFF\xD8\xFF\xE0\x00\x10JFIF\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00")
)

func TestDetectImage(t *testing.T) {
	ct, ext, err := DetectImage(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, "png", ext)

	ct, ext, err = DetectImage(jpegHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
	assert.Equal(t, "jpg", ext)

	_, _, err = DetectImage(gifHeader)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, _, err = DetectImage(nil)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	big := append(bytes.Clone(pngHeader), make([]byte, MaxImageSize)...)
	_, _, err = DetectImage(big)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("responders/3f0c8c1e-8d4b-4f5e-9d7a-2b1c0e9f8a7b.png"))
	assert.True(t, ValidKey("responders/3f0c8c1e-8d4b-4f5e-9d7a-2b1c0e9f8a7b.jpg"))
	assert.False(t, ValidKey("responders/3f0c8c1e-8d4b-4f5e-9d7a-2b1c0e9f8a7b.gif"))
	assert.False(t, ValidKey("responders/../secrets.png"))
	assert.False(t, ValidKey("other/3f0c8c1e-8d4b-4f5e-9d7a-2b1c0e9f8a7b.png"))
}
