// Package listview holds the state machine behind the paginated, filterable
// list views. A controller owns the current parameters and the last page
// fetched for them, and mirrors committed parameters into the address.
package listview

import (
	"context"
	"sync"

	"github.com/marqueehq/marquee/pkg/models"
	"github.com/robinjoseph08/golib/logger"
)

// Params is implemented by the list parameter value types.
type Params[P any] interface {
	comparable
	PageNumber() int
	WithPage(page int) P
}

// FetchFunc loads one page of results for the given parameters.
type FetchFunc[P any] func(ctx context.Context, p P) (*models.PageResult, error)

// Synchronizer reflects committed parameters into the navigable address.
type Synchronizer[P any] interface {
	Read() P
	Write(p P)
}

// State is a snapshot of a controller. Result is nil until the first
// successful fetch.
type State[P any] struct {
	Params  P
	Result  *models.PageResult
	Loading bool
}

// Items returns the current page of results, if any.
func (s State[P]) Items() []models.MediaSummary {
	if s.Result == nil {
		return nil
	}
	return s.Result.Items
}

func (s State[P]) TotalPages() int {
	if s.Result == nil {
		return 0
	}
	return s.Result.TotalPages
}

type Controller[P Params[P]] struct {
	name   string
	fetch  FetchFunc[P]
	syncer Synchronizer[P]

	mu       sync.Mutex
	params   P
	result   *models.PageResult
	mounted  bool
	inflight int
	// seq is bumped for every fetch issued. Only the fetch holding the latest
	// value may commit.
	seq uint64
}

func New[P Params[P]](name string, fetch FetchFunc[P], syncer Synchronizer[P]) *Controller[P] {
	return &Controller[P]{
		name:   name,
		fetch:  fetch,
		syncer: syncer,
	}
}

// State returns a snapshot of the controller.
func (c *Controller[P]) State() State[P] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[P]{
		Params:  c.params,
		Result:  c.result,
		Loading: c.inflight > 0,
	}
}

func (c *Controller[P]) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Mount derives the parameters from the synchronizer and loads their page.
// The address is left as it is unless the requested page lies beyond the last
// page, in which case the last page is loaded instead and written back. An
// empty listing has one page.
func (c *Controller[P]) Mount(ctx context.Context) error {
	p := c.syncer.Read()

	c.mu.Lock()
	if !c.mounted {
		c.params = p
		c.mounted = true
	}
	seq := c.begin()
	c.mu.Unlock()

	result, err := c.fetch(ctx, p)
	if err == nil && p.PageNumber() > lastPage(result) {
		p = p.WithPage(lastPage(result))
		c.mu.Lock()
		c.inflight--
		seq = c.begin()
		c.mu.Unlock()

		result, err = c.fetch(ctx, p)
		return c.finish(ctx, seq, p, result, err, true)
	}
	return c.finish(ctx, seq, p, result, err, false)
}

// Go moves to new parameters unconditionally.
func (c *Controller[P]) Go(ctx context.Context, next P) error {
	c.mu.Lock()
	seq := c.begin()
	c.mu.Unlock()

	result, err := c.fetch(ctx, next)
	return c.finish(ctx, seq, next, result, err, true)
}

// Update moves to the parameters computed from the current ones.
func (c *Controller[P]) Update(ctx context.Context, change func(current P) P) error {
	c.mu.Lock()
	next := change(c.params)
	seq := c.begin()
	c.mu.Unlock()

	result, err := c.fetch(ctx, next)
	return c.finish(ctx, seq, next, result, err, true)
}

// ChangePage moves to page p. It is ignored while a fetch is in flight or
// when p is outside 1..TotalPages.
func (c *Controller[P]) ChangePage(ctx context.Context, p int) error {
	c.mu.Lock()
	if c.inflight > 0 || c.result == nil || p < 1 || p > c.result.TotalPages {
		c.mu.Unlock()
		logger.FromContext(ctx).Debug("ignoring page change", logger.Data{"list": c.name, "page": p})
		return nil
	}
	next := c.params.WithPage(p)
	seq := c.begin()
	c.mu.Unlock()

	result, err := c.fetch(ctx, next)
	return c.finish(ctx, seq, next, result, err, true)
}

func lastPage(r *models.PageResult) int {
	if r.TotalPages < 1 {
		return 1
	}
	return r.TotalPages
}

// begin enters the loading state. c.mu must be held.
func (c *Controller[P]) begin() uint64 {
	c.seq++
	c.inflight++
	return c.seq
}

func (c *Controller[P]) finish(ctx context.Context, seq uint64, next P, result *models.PageResult, err error, write bool) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if err != nil {
		log.Err(err).Warn("failed to fetch list page, keeping last good page", logger.Data{"list": c.name})
		return err
	}
	if seq != c.seq {
		log.Debug("discarding superseded list page", logger.Data{"list": c.name, "seq": seq, "latest": c.seq})
		return nil
	}

	c.params = next
	c.result = result
	if write {
		c.syncer.Write(next)
	}
	return nil
}
