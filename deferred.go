package fontmap

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// deferredState is the state of a DeferredFontMap.
//
// The Invalid state exists only for the instant of the Waiting → Ready
// ownership transfer, while the joining goroutine is blocked on the
// worker. Observing it means a second goroutine called Synchronize
// concurrently, which the single-consumer model forbids.
type deferredState int

const (
	stateWaiting deferredState = iota
	stateReady
	stateInvalid
)

// loadResult carries the loader's outcome across the goroutine boundary.
type loadResult struct {
	fm  *FontMap
	err error
}

// DeferredFontMap lets a FontMap be built on a background goroutine while
// the rest of the program proceeds, and joined exactly once when a
// consumer first needs synchronous access.
//
// The handle is a one-way state machine: it starts Waiting when Load
// spawns the worker, transitions to Ready the first time Synchronize
// completes, and stays Ready for the remainder of the process. The
// background Resolve happens-before any Map call that follows a
// successful Synchronize.
type DeferredFontMap struct {
	mu     sync.Mutex
	state  deferredState
	result chan loadResult

	fm  *FontMap
	err error
}

// Load runs loader on a new goroutine and returns a Waiting handle.
// The loader is expected to queue every known requirement and call
// Resolve before returning, so that the handle yields a fully-resolved
// map. There is no cancellation: the load runs to completion.
//
// A panic in the loader is recovered, logged, and surfaced as the
// handle's error rather than crashing the process.
func Load(loader func() (*FontMap, error)) *DeferredFontMap {
	result := make(chan loadResult, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				Logger().Warn("fontmap: loader panicked",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))
				result <- loadResult{err: fmt.Errorf("fontmap: loader panic: %v", rec)}
			}
		}()

		fm, err := loader()
		result <- loadResult{fm: fm, err: err}
	}()

	return &DeferredFontMap{
		state:  stateWaiting,
		result: result,
	}
}

// Synchronize joins the background load. The first call blocks until the
// worker finishes and transitions the handle to Ready; every later call
// is a no-op that returns the stored load error, if any.
//
// A load failure is not swallowed: it is returned here and from every
// subsequent Map call, instead of yielding an empty map.
func (d *DeferredFontMap) Synchronize() error {
	d.mu.Lock()
	switch d.state {
	case stateReady:
		err := d.err
		d.mu.Unlock()
		return err
	case stateInvalid:
		d.mu.Unlock()
		return fmt.Errorf("%w: concurrent Synchronize", ErrInvalidState)
	}

	// Waiting. Mark the slot invalid while blocked on the worker so a
	// concurrent caller is detected instead of silently racing the
	// ownership transfer.
	d.state = stateInvalid
	d.mu.Unlock()

	res := <-d.result

	d.mu.Lock()
	d.fm = res.fm
	d.err = res.err
	d.state = stateReady
	d.mu.Unlock()

	return res.err
}

// Map returns the shared FontMap. Callers must Synchronize first: while
// the handle is Waiting, Map fails with ErrNotLoaded, and a load failure
// stored by Synchronize is returned here as well.
func (d *DeferredFontMap) Map() (*FontMap, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case stateWaiting:
		return nil, fmt.Errorf("%w: deferred font map not synchronized", ErrNotLoaded)
	case stateInvalid:
		return nil, fmt.Errorf("%w: synchronization in progress", ErrInvalidState)
	}

	if d.err != nil {
		return nil, d.err
	}
	return d.fm, nil
}

// MustMap is like Map but panics on failure. Calling it before
// Synchronize is a programmer error.
func (d *DeferredFontMap) MustMap() *FontMap {
	fm, err := d.Map()
	if err != nil {
		panic(err)
	}
	return fm
}
