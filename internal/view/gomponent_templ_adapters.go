package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents node to satisfy templ.Component,
// so gomponents pages can flow through templ based rendering.
type GomponentToTemplAdapter struct {
	Node cmp.Node
}

// Render implements templ.Component. A cancelled context stops rendering
// before anything is written.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ.Component.
func AdaptGomponentToTempl(node cmp.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component to satisfy cmp.Node.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements cmp.Node. gomponents passes no context, so
// context.Background() is used for the templ call.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents node.
func AdaptTemplToGomponent(component templ.Component) cmp.Node {
	return &TemplToGomponentAdapter{Component: component}
}
