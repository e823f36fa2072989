package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(RenderMarkdown("hello <script>alert(1)</script> *world*"))
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "<em>world</em>")
}

func TestRenderMarkdownKeepsImages(t *testing.T) {
	out := string(RenderMarkdown("![a tanuki](https://example.com/a.png)"))
	assert.Contains(t, out, "<img")
	assert.Contains(t, out, "https://example.com/a.png")
}

func TestRenderMarkdownLinksOpenInNewTab(t *testing.T) {
	out := string(RenderMarkdown("[site](https://example.com)"))
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "noreferrer")
}
