// Package htmltomarkdown renders extracted page content as Markdown with
// github.com/JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sift"
)

// Ensure Converter implements sift.Converter at compile time.
var _ sift.Converter = (*Converter)(nil)

// Converter renders HTML as CommonMark with GitHub-style tables.
type Converter struct {
	// Domain, when set, turns relative links and image sources into
	// absolute URLs on that domain.
	Domain string

	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert returns html as Markdown with surrounding whitespace trimmed.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sift.Errorf(sift.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if c.Domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.Domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", sift.WrapError(sift.EINTERNAL, err, "convert to markdown")
	}
	return strings.TrimSpace(md), nil
}
