package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
)

// FileLimits bounds what may be uploaded.
type FileLimits struct {
	AllowedExtensions []string // lowercase, dot-prefixed, e.g. ".pdf"
	MaxBytes          int64
}

// DefaultFileLimits builds FileLimits from configuration.
func DefaultFileLimits() FileLimits {
	return FileLimits{
		AllowedExtensions: config.AllowedFileTypes(),
		MaxBytes:          int64(config.GetInt("max_file_size_mb", 10)) * 1024 * 1024,
	}
}

// File checks an upload candidate against the limits. The extension
// check runs before the size check so the caller can report the most
// actionable problem first.
func File(name string, size int64, limits FileLimits) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return fmt.Errorf("file %q has no extension; allowed types: %s",
			filepath.Base(name), strings.Join(limits.AllowedExtensions, ", "))
	}
	allowed := false
	for _, a := range limits.AllowedExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("file type %s is not supported; allowed types: %s",
			ext, strings.Join(limits.AllowedExtensions, ", "))
	}
	if limits.MaxBytes > 0 && size > limits.MaxBytes {
		return fmt.Errorf("file is %.1f MB, the limit is %d MB",
			float64(size)/(1024*1024), limits.MaxBytes/(1024*1024))
	}
	return nil
}
