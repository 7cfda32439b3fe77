package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		fileName string
		expected string
	}{
		{"leave_policy.pdf", "Leave Policy"},
		{"remote_work_policy.pdf", "Remote Work Policy"},
		{"CODE_OF_CONDUCT.pdf", "Code Of Conduct"},
		{"benefits.pdf", "Benefits"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayName(tt.fileName))
	}
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "leave_policy_2024.pdf", SanitizeFileName("leave policy 2024.pdf"))
	assert.Equal(t, "a-b_c.1.pdf", SanitizeFileName("a-b_c.1.pdf"))
}

func TestWriteFileWithTimestamp(t *testing.T) {
	dir := t.TempDir()

	name, err := WriteFileWithTimestamp(dir, "leave_policy.pdf", []byte("content"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "leave_policy_"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCopyFileWithTimestamp(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "policy.pdf")
	require.NoError(t, os.WriteFile(srcPath, []byte("pdf bytes"), 0644))

	destPath, err := CopyFileWithTimestamp(srcPath, destDir)
	require.NoError(t, err)

	data, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}
