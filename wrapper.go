package scad

import (
	"fmt"
	"strings"
)

// maxWrapDepth bounds wrapper resolution. Built-in chains need at most 3 levels.
const maxWrapDepth = 32

// WrapperConfig describes a wrapper node to build around a renderable.
//
// Wrap receives the renderable being wrapped (the placeholder slot) and returns
// the wrapper node holding it; all other wrapper arguments are fixed when the
// config is created.
type WrapperConfig struct {
	Name string                          // Wrapper name, used in diagnostics
	Wrap func(inner Renderable) Renderable // Builds the wrapper around inner
}

// TranslateWrapper returns a config wrapping nodes in a Translate to pos.
func TranslateWrapper(pos Coordinate) WrapperConfig {
	return WrapperConfig{
		Name: "translate",
		Wrap: func(inner Renderable) Renderable { return NewTranslate(pos, inner) },
	}
}

// ColorWrapper returns a config wrapping nodes in a ColorChange to c.
func ColorWrapper(c Color) WrapperConfig {
	return WrapperConfig{
		Name: "color",
		Wrap: func(inner Renderable) Renderable { return NewColorChange(c, inner) },
	}
}

// DefaultWrappers returns the position and color wrappers of r, in that order.
func DefaultWrappers(r Renderable) []WrapperConfig {
	return []WrapperConfig{
		TranslateWrapper(r.Position()),
		ColorWrapper(r.Color()),
	}
}

// Wrap resolves the wrappers of r into a nested renderable.
//
// Each wrapper declared by r is built around the current result and resolved
// recursively, so the last declared wrapper ends up outermost. Nodes without
// wrappers are returned unchanged. Wrap panics with ErrWrapperRecursion if a
// wrapper chain does not terminate.
func Wrap(r Renderable) Renderable {
	return wrap(r, nil)
}

// wrap resolves wrappers, tracking the chain of wrapper names.
func wrap(r Renderable, chain []string) Renderable {
	hw, ok := r.(HasWrappers)
	if !ok {
		return r
	}
	if len(chain) > maxWrapDepth {
		panic(fmt.Errorf("%w: %s", ErrWrapperRecursion, strings.Join(chain, " > ")))
	}

	for _, cfg := range hw.Wrappers() {
		r = wrap(cfg.Wrap(r), append(chain[:len(chain):len(chain)], cfg.Name))
	}

	return r
}

// nodes holds the children of wrapper and combination nodes.
type nodes struct {
	placement
	renderables []Renderable // Child nodes in order
}

// Children implements Container.
func (n nodes) Children() []Renderable {
	return n.renderables
}

// Modules implements HasModules by collecting child modules.
func (n nodes) Modules() []Module {
	return modulesOf(n.renderables)
}

// hasChildren reports whether there is anything to render.
func (n nodes) hasChildren() bool {
	return len(n.renderables) > 0
}

// appended returns a copy of the children with r appended.
func (n nodes) appended(r Renderable) []Renderable {
	out := make([]Renderable, len(n.renderables), len(n.renderables)+1)
	copy(out, n.renderables)
	return append(out, r)
}

// renderChildren renders children after resolving their wrappers.
func (n nodes) renderChildren(rc *RenderContext) string {
	var b strings.Builder
	for _, r := range n.renderables {
		b.WriteString(Wrap(r).Render(rc))
	}
	return b.String()
}

// renderUnwrapped renders children as they are.
func (n nodes) renderUnwrapped(rc *RenderContext) string {
	var b strings.Builder
	for _, r := range n.renderables {
		b.WriteString(r.Render(rc))
	}
	return b.String()
}

// block renders head { body } or only body when head is empty.
func block(head, body string) string {
	if head == "" {
		return body
	}
	return head + " {" + body + "}"
}
