package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jundev/oneline/internal/widget"
)

// Method names of the host app's widget channel.
const (
	MethodUpdateWidgetData = "updateWidgetData"
	MethodReloadWidget     = "reloadWidget"
)

var (
	ErrNotImplemented = errors.New("method not implemented")
	ErrInvalidArgs    = errors.New("invalid arguments")
)

// ErrorCode maps bridge errors to the codes reported back to the host app.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotImplemented):
		return "NOT_IMPLEMENTED"
	case errors.Is(err, ErrInvalidArgs):
		return "INVALID_ARGS"
	default:
		return "UPDATE_FAILED"
	}
}

// Notifier receives re-render requests.
type Notifier interface {
	RequestRerender()
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func()

func (f NotifierFunc) RequestRerender() { f() }

// MethodCall is one message from the host app.
type MethodCall struct {
	Method string         `json:"method"`
	Args   map[string]any `json:"args,omitempty"`
}

// WidgetBridge relays state from the host app into the shared store and asks
// the widgets to re-render.
type WidgetBridge struct {
	Store    widget.StateStore
	Notifier Notifier
}

// ReadState never fails: when the store cannot be read the widgets render the
// defaults and the failure is logged.
func (b *WidgetBridge) ReadState(ctx context.Context) widget.State {
	if b.Store == nil {
		return widget.DefaultState()
	}
	st, err := b.Store.ReadState(ctx)
	if err != nil {
		log.Printf("warn: read widget state: %v", err)
		return widget.DefaultState()
	}
	return st.Normalized()
}

// UpdateWidgetData overwrites the shared snapshot and requests a re-render.
func (b *WidgetBridge) UpdateWidgetData(ctx context.Context, s widget.State) error {
	if b.Store == nil {
		return fmt.Errorf("bridge: store not configured")
	}
	if s.LastEntryContent != nil && *s.LastEntryContent == "" {
		s.LastEntryContent = nil
	}
	if err := b.Store.WriteState(ctx, s); err != nil {
		return fmt.Errorf("update widget data: %w", err)
	}
	b.ReloadWidget()
	return nil
}

// ReloadWidget asks every widget instance to render again.
func (b *WidgetBridge) ReloadWidget() {
	if b.Notifier != nil {
		b.Notifier.RequestRerender()
	}
}

// Handle dispatches one channel call.
func (b *WidgetBridge) Handle(ctx context.Context, call MethodCall) error {
	switch call.Method {
	case MethodUpdateWidgetData:
		st, err := StateFromArgs(call.Args)
		if err != nil {
			return err
		}
		return b.UpdateWidgetData(ctx, st)
	case MethodReloadWidget:
		b.ReloadWidget()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrNotImplemented, call.Method)
	}
}

// StateFromArgs decodes updateWidgetData arguments. Missing fields take their
// defaults; a missing lastEntryContent clears the stored content.
func StateFromArgs(args map[string]any) (widget.State, error) {
	var st widget.State
	if v, ok := args[widget.KeyHasWrittenToday]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return widget.State{}, fmt.Errorf("%w: %s must be a boolean", ErrInvalidArgs, widget.KeyHasWrittenToday)
		}
		st.HasWrittenToday = b
	}
	if v, ok := args[widget.KeyCurrentStreak]; ok && v != nil {
		n, err := intArg(v)
		if err != nil {
			return widget.State{}, fmt.Errorf("%w: %s %v", ErrInvalidArgs, widget.KeyCurrentStreak, err)
		}
		st.CurrentStreak = n
	}
	if v, ok := args[widget.KeyLastEntryContent]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return widget.State{}, fmt.Errorf("%w: %s must be a string", ErrInvalidArgs, widget.KeyLastEntryContent)
		}
		if s != "" {
			st.LastEntryContent = widget.StringPtr(s)
		}
	}
	return st, nil
}

func intArg(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return int32Range(int64(n))
	case int64:
		return int32Range(n)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, fmt.Errorf("must be an integer")
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return int32Range(i)
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}

// int32Range keeps streaks within the host app's Int.
func int32Range(n int64) (int, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("out of range")
	}
	return int(n), nil
}
