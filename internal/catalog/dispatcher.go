package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/safar/go-catalog-store/internal/models"
)

type EventDispatcher interface {
	Dispatch(event models.Event) error
}

type EventHandler func(event models.Event) error

// Bus fans each event out to every subscriber in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers []EventHandler
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(h EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Dispatch(event models.Event) error {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(event); err != nil {
			errs = append(errs, fmt.Errorf("handle %s: %w", event.Type(), err))
		}
	}
	return errors.Join(errs...)
}
