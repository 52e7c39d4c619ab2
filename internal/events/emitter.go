package events

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emitter pushes named events to the UI.
type Emitter interface {
	Emit(name string, payload any)
}

// NopEmitter drops every event. Used headless and before startup.
type NopEmitter struct{}

func (NopEmitter) Emit(string, any) {}

// FuncEmitter adapts a plain function.
type FuncEmitter func(name string, payload any)

func (f FuncEmitter) Emit(name string, payload any) { f(name, payload) }

// RuntimeEmitter emits through the Wails runtime once Startup has handed it
// the application context. Events emitted earlier are dropped.
type RuntimeEmitter struct {
	mu  sync.RWMutex
	ctx context.Context
}

func NewRuntimeEmitter() *RuntimeEmitter {
	return &RuntimeEmitter{}
}

func (e *RuntimeEmitter) Startup(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctx = ctx
}

func (e *RuntimeEmitter) Emit(name string, payload any) {
	e.mu.RLock()
	ctx := e.ctx
	e.mu.RUnlock()
	if ctx == nil {
		return
	}
	runtime.EventsEmit(ctx, name, payload)
}
