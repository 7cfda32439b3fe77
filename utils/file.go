package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DisplayName turns a policy filename into its display form: extension
// dropped, underscores become spaces, words are title-cased.
// "leave_policy.pdf" -> "Leave Policy".
func DisplayName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	words := strings.Fields(strings.ReplaceAll(base, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// SanitizeFileName replaces characters outside [a-zA-Z0-9-_.] with
// underscores.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// WriteFileWithTimestamp writes data into dir under
// originalname_timestamp.extension and returns the stored filename.
func WriteFileWithTimestamp(dir, fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %v", err)
	}

	ext := filepath.Ext(fileName)
	baseFileName := strings.TrimSuffix(filepath.Base(fileName), ext)
	timestamp := time.Now().Unix()
	destFileName := SanitizeFileName(fmt.Sprintf("%s_%d%s", baseFileName, timestamp, ext))

	if err := os.WriteFile(filepath.Join(dir, destFileName), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %v", err)
	}
	return destFileName, nil
}

// CopyFileWithTimestamp copies a file into dir with a timestamp suffix and
// returns the destination path.
func CopyFileWithTimestamp(sourcePath, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %v", err)
	}

	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %v", err)
	}
	defer sourceFile.Close()

	originalName := filepath.Base(sourcePath)
	ext := filepath.Ext(originalName)
	baseFileName := strings.TrimSuffix(originalName, ext)
	timestamp := time.Now().Unix()
	destFileName := SanitizeFileName(fmt.Sprintf("%s_%d%s", baseFileName, timestamp, ext))
	destPath := filepath.Join(dir, destFileName)

	destFile, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return "", fmt.Errorf("failed to copy file: %v", err)
	}

	return destPath, nil
}
