package app

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
)

// renderCacheMax caps the preview cache; rendering markdown is the most
// expensive part of a frame, and the same (content, width) pair recurs on
// every keystroke while browsing.
const renderCacheMax = 128

// markdownRenderer renders note content as markdown for the preview pane,
// caching rendered output by content hash and width.
type markdownRenderer struct {
	style string
	cache map[uint64]string
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{
		style: style,
		cache: make(map[uint64]string),
	}
}

// Render returns the styled markdown for content at the given wrap width.
// On any renderer error the raw content is returned, so a malformed note
// never blanks the preview.
func (r *markdownRenderer) Render(content string, width int) string {
	if width < 1 {
		width = 1
	}
	key := xxhash.Sum64String(fmt.Sprintf("%d:%s", width, content))
	if out, ok := r.cache[key]; ok {
		return out
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}

	if len(r.cache) >= renderCacheMax {
		r.cache = make(map[uint64]string)
	}
	r.cache[key] = out
	return out
}
