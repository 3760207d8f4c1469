package uploader

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var acceptedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// BuildStorageKey prefixes the sanitized name with the upload time in unix
// milliseconds.
func BuildStorageKey(now time.Time, name string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), SanitizeFilename(name))
}

// SanitizeFilename drops every non-ASCII rune. Storage keys must stay ASCII.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r <= 0x7F {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

func IsAcceptedFile(name string) bool {
	_, ok := acceptedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

func contentTypeFor(name string) string {
	if ct, ok := acceptedExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
