package source

import (
	"fmt"
	"strings"
	"sync"
)

// Context is a registry of Source instances keyed by path. It renders
// excerpts of a Range for diagnostics.
type Context struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

// NewContext returns an empty source context.
func NewContext() *Context {
	return &Context{sources: make(map[string]*Source)}
}

// Add registers src under its path. It is an internal-invariant
// violation to register two different sources under the same path.
func (c *Context) Add(src *Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.sources[src.Path()]; ok && existing != src {
		panic(fmt.Sprintf("forge/source: duplicate path registered in context: %q", src.Path()))
	}
	c.sources[src.Path()] = src
}

// Lookup returns the Source registered under path, or nil.
func (c *Context) Lookup(path string) *Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sources[path]
}

// Excerpt loads the text spanned by r: it finds the start of r's line,
// and returns exactly column+length-1 payload characters of that line
// followed by the rest of the line's trailing text.
// This supports the diagnostic renderer in diag.
func (c *Context) Excerpt(r Range) (string, error) {
	if r.IsNull() {
		return "", fmt.Errorf("forge/source: cannot render excerpt of a null range")
	}

	src := c.Lookup(r.Start.Path)
	if src == nil {
		return "", fmt.Errorf("forge/source: no source registered for path %q", r.Start.Path)
	}

	line, ok := c.LineText(r.Start.Path, r.Start.Line)
	if !ok {
		return "", fmt.Errorf("forge/source: line %d out of range for %q", r.Start.Line, r.Start.Path)
	}
	return line, nil
}

// LineText returns the full text of the 1-based line number within
// the source registered at path.
func (c *Context) LineText(path string, line int) (string, bool) {
	src := c.Lookup(path)
	if src == nil || line < 1 {
		return "", false
	}
	text := src.Text()

	start := 0
	current := 1
	for i := 0; i < len(text); i++ {
		if current == line {
			break
		}
		if text[i] == '\n' {
			current++
			start = i + 1
		}
	}
	if current != line {
		return "", false
	}

	end := strings.IndexByte(text[start:], '\n')
	if end == -1 {
		return text[start:], true
	}
	return text[start : start+end], true
}
