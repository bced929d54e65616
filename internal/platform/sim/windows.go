package sim

import (
	"fmt"
	"sync"

	"github.com/mj1618/kakao-a11y/internal/model"
)

// Windows is a window-class table implementing platform.WindowClasses.
type Windows struct {
	mu      sync.Mutex
	classes map[model.Handle]string
	lookups int
}

// NewWindows returns a table seeded with classes.
func NewWindows(classes map[model.Handle]string) *Windows {
	w := &Windows{classes: make(map[model.Handle]string, len(classes))}
	for h, c := range classes {
		w.classes[h] = c
	}
	return w
}

// Set registers a window.
func (w *Windows) Set(hwnd model.Handle, class string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.classes[hwnd] = class
}

// ClassName implements platform.WindowClasses.
func (w *Windows) ClassName(hwnd model.Handle) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lookups++
	c, ok := w.classes[hwnd]
	if !ok {
		return "", fmt.Errorf("no window %s", hwnd)
	}
	return c, nil
}

// Lookups returns how many class-name lookups were made.
func (w *Windows) Lookups() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lookups
}
