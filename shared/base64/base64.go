package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const marker = ";base64,"

// GetContentType extracts the declared MIME type from a data URI
// ("data:image/png;base64,..."). Returns an empty string when the
// value is not a data URI.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode strips the data-URI prefix and decodes the payload.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, marker)
	if idx == -1 {
		return nil, fmt.Errorf("not a base64 data URI")
	}

	payload := file[idx+len(marker):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
