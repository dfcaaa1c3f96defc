package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUploadName(t *testing.T) {
	name, err := GenerateUploadName(".jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.True(t, ValidateUploadName(name))

	// 扩展名没带点时自动补上
	name, err = GenerateUploadName("png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	// 连续生成不重复
	other, err := GenerateUploadName(".jpg")
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestValidateUploadName(t *testing.T) {
	assert.True(t, ValidateUploadName("1724230000000-a1b2c3d4.jpg"))

	tests := []string{
		"",
		".",
		"..",
		"../secret.jpg",
		"dir/file.jpg",
		"dir\\file.jpg",
	}
	for _, name := range tests {
		assert.False(t, ValidateUploadName(name), name)
	}
}
