package service

import (
	"context"

	"github.com/jundev/oneline/internal/widget"
)

// InstanceView is the render of one placed widget.
type InstanceView struct {
	Instance Instance
	View     widget.RenderedView
}

// Renderer runs the render pipeline: one snapshot from the bridge, one
// language resolution, then the engine for each widget.
type Renderer struct {
	Bridge    *WidgetBridge
	Engine    *widget.Engine
	Instances *Instances
	// Locale is the raw locale tag supplied by the host.
	Locale string
}

// Language resolves the host locale.
func (r *Renderer) Language() widget.Language {
	return r.Engine.Resolve(r.Locale)
}

// Render renders a single widget of the given layout.
func (r *Renderer) Render(ctx context.Context, layout widget.Layout) widget.RenderedView {
	st := r.Bridge.ReadState(ctx)
	return r.Engine.Render(st, r.Language(), layout)
}

// RenderAll renders every placed widget from the same snapshot. Each widget
// draws its own message.
func (r *Renderer) RenderAll(ctx context.Context) []InstanceView {
	if r.Instances == nil {
		return nil
	}
	st := r.Bridge.ReadState(ctx)
	lang := r.Language()
	list := r.Instances.List()
	out := make([]InstanceView, 0, len(list))
	for _, inst := range list {
		out = append(out, InstanceView{Instance: inst, View: r.Engine.Render(st, lang, inst.Layout)})
	}
	return out
}
