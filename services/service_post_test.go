package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "hello world", 10, "hello world"},
		{"truncates", "one two three four", 2, "one two"},
		{"collapses whitespace", "  a\tb\nc  ", 5, "a b c"},
		{"empty", "", 10, ""},
		{"exactly at limit", "a b c", 3, "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstWords(tt.in, tt.n))
		})
	}
}

func TestThumbnailLabel(t *testing.T) {
	assert.Equal(t, "ZIP Archive", ThumbnailLabel(".zip"))
	assert.Equal(t, "PDF", ThumbnailLabel(".pdf"))
	assert.Equal(t, "PPTX", ThumbnailLabel(".pptx"))
	assert.Equal(t, "XLSX", ThumbnailLabel(".xlsx"))
}
