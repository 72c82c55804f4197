package reader

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotText rejects files that are not plain text.
var ErrNotText = errors.New("not a plain text file")

// ReadTextFile loads path if it has a .txt extension and its content sniffs
// as text/plain.
func ReadTextFile(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > 0 && !strings.HasPrefix(http.DetectContentType(data), "text/plain") {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}
	return string(data), nil
}
