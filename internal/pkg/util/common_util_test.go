package util

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags([]string{" go ", "go", "", "  ", "redis", "Go"})
	assert.Equal(t, []string{"go", "redis", "Go"}, tags)

	assert.Nil(t, NormalizeTags(nil))
}

func TestStrSliceToUInt64Slice(t *testing.T) {
	out, err := StrSliceToUInt64Slice([]string{"1", "42", "0"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 42, 0}, out)

	_, err = StrSliceToUInt64Slice([]string{"1", "abc"})
	assert.Error(t, err)
}

func TestGetSafeContentType(t *testing.T) {
	// PNG 魔数
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	reader := bytes.NewReader(png)

	contentType, err := GetSafeContentType(reader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	// 读取后位置回到起始
	pos, err := reader.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestGetSafeContentTypeIgnoresClaimedName(t *testing.T) {
	reader := bytes.NewReader([]byte("plain text pretending to be an image"))

	contentType, err := GetSafeContentType(reader)
	require.NoError(t, err)
	assert.Contains(t, contentType, "text/plain")
}
