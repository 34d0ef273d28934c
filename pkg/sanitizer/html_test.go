package sanitizer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textnorm/pkg/sanitizer"
	"github.com/dmitrymomot/textnorm/pkg/slug"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "Article title", "Article title"},
		{"inline tags", `<p>Hello <strong>world</strong></p>`, "Hello world"},
		{"script body dropped", `<p>Hello</p><script>alert('xss')</script>`, "Hello"},
		{"style body dropped", `Hello <style>p{color:red}</style>World`, "Hello World"},
		{"link text kept", `<a href="javascript:alert(1)">click</a>`, "click"},
		{"void element", `<img src="x" onerror="alert(1)">`, ""},
		{"iframe", `<iframe src="https://evil.example"></iframe>content`, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestStripHTMLBeforeSlug(t *testing.T) {
	t.Parallel()

	// The slug pipeline deletes '<' and '>' but keeps tag names, so markup
	// must be stripped first to keep it out of the slug.
	title := `<h1>Hello <em>World</em></h1>`
	assert.Equal(t, "h1hello-emworld/em/h1", slug.Make(title))
	assert.Equal(t, "hello-world", slug.Make(sanitizer.StripHTML(title)))
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"formatting kept", `<p><strong>Bold</strong> and <em>italic</em></p>`, `<p><strong>Bold</strong> and <em>italic</em></p>`},
		{"lists kept", `<ul><li>one</li><li>two</li></ul>`, `<ul><li>one</li><li>two</li></ul>`},
		{"code kept", `<pre><code>x := 1</code></pre>`, `<pre><code>x := 1</code></pre>`},
		{"links get nofollow", `<a href="https://example.com">link</a>`, `<a href="https://example.com" rel="nofollow">link</a>`},
		{"javascript link removed", `<a href="javascript:alert(1)">click</a>`, "click"},
		{"event handler removed", `<p onclick="alert(1)">content</p>`, "<p>content</p>"},
		{"style attribute removed", `<p style="color:red">content</p>`, "<p>content</p>"},
		{"div unwrapped", `<div>content</div>`, "content"},
		{"script removed", `<p>Hello</p><script>alert(1)</script>`, "<p>Hello</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeHTML(tt.input))
		})
	}
}

func TestHTMLConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				assert.Equal(t, "Hello world", sanitizer.StripHTML(`<p>Hello <b>world</b></p>`))
				assert.Equal(t, "<p>Hello</p>", sanitizer.SanitizeHTML(`<p>Hello</p><script>x()</script>`))
			}
		}()
	}
	wg.Wait()
}

func TestHTMLNeverLeaksActiveContent(t *testing.T) {
	t.Parallel()

	vectors := []string{
		`<script>alert(1)</script>`,
		`<script src="https://evil.example/x.js"></script>`,
		`<img src=x onerror=alert(1)>`,
		`<svg onload=alert(1)>`,
		`<body onload=alert(1)>`,
		`<a href="JaVaScRiPt:alert(1)">x</a>`,
		`<a href="vbscript:msgbox(1)">x</a>`,
		`<iframe src="javascript:alert(1)"></iframe>`,
		`<meta http-equiv="refresh" content="0;url=javascript:alert(1)">`,
		`<input onfocus=alert(1) autofocus>`,
		`<details open ontoggle=alert(1)>`,
	}

	for _, v := range vectors {
		for name, fn := range map[string]func(string) string{
			"strip":    sanitizer.StripHTML,
			"sanitize": sanitizer.SanitizeHTML,
		} {
			out := fn(v)
			assert.NotContains(t, out, "<script", "%s(%q)", name, v)
			assert.NotContains(t, out, "alert(", "%s(%q)", name, v)
			assert.NotContains(t, out, "onerror", "%s(%q)", name, v)
			assert.NotContains(t, out, "onload", "%s(%q)", name, v)
		}
	}
}

func TestHTMLStructTags(t *testing.T) {
	t.Parallel()

	type Post struct {
		Title string `sanitize:"strip_html,trim"`
		Body  string `sanitize:"html"`
	}

	p := Post{
		Title: `  <b>Release notes</b> `,
		Body:  `<p>Fixed <a href="https://example.com">bug</a></p><script>alert(1)</script>`,
	}
	require.NoError(t, sanitizer.SanitizeStruct(&p))

	assert.Equal(t, "Release notes", p.Title)
	assert.Equal(t, `<p>Fixed <a href="https://example.com" rel="nofollow">bug</a></p>`, p.Body)
}
