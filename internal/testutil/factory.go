package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/C41M50N/llm/core"
)

// CountingFactory wraps a provider instance in a factory that records how
// many times it ran. Tests use it to assert the load-once guarantee.
type CountingFactory struct {
	calls atomic.Int64

	mu       sync.Mutex
	instance core.ProviderInstance
	err      error
	delay    chan struct{} // when set, Factory blocks until it closes
}

// NewCountingFactory returns a factory producing the given instance.
func NewCountingFactory(instance core.ProviderInstance) *CountingFactory {
	return &CountingFactory{instance: instance}
}

// Factory is the function to register with the client.
func (f *CountingFactory) Factory(ctx context.Context) (core.ProviderInstance, error) {
	f.calls.Add(1)

	f.mu.Lock()
	instance, err, delay := f.instance, f.err, f.delay
	f.mu.Unlock()

	if delay != nil {
		select {
		case <-delay:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// Calls reports how many times the factory has run.
func (f *CountingFactory) Calls() int {
	return int(f.calls.Load())
}

// Fail makes subsequent runs return err; pass nil to heal the factory.
func (f *CountingFactory) Fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// Block makes subsequent runs wait on the returned channel, so tests can
// hold several resolutions in flight at once.
func (f *CountingFactory) Block() chan struct{} {
	release := make(chan struct{})
	f.mu.Lock()
	f.delay = release
	f.mu.Unlock()
	return release
}
