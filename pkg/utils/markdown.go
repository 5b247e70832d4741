package utils

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	// UGCPolicy remove scripts, handlers de evento e URLs javascript:
	markdownPolicy = bluemonday.UGCPolicy()
)

// RenderMarkdown converte o texto devolvido pelo modelo em HTML sanitizado
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(err, "erro ao converter markdown")
	}

	return markdownPolicy.Sanitize(buf.String()), nil
}
