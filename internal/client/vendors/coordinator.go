// Package vendors keeps the displayed vendor collection consistent with the
// current position and category filter, reconciling overlapping fetches so a
// slow stale response can never overwrite fresher data.
package vendors

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fahadsheikh/rescuepoint/internal/client/api"
	"github.com/fahadsheikh/rescuepoint/internal/client/geo"
	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/logging"
)

// DefaultRadiusKm is the fixed search radius of every query.
const DefaultRadiusKm = 5.0

// ErrFetch marks a failed vendor query. The previously displayed collection
// is retained; callers surface the failure as a transient notice only.
var ErrFetch = errors.New("vendor fetch failed")

// Coordinator derives queries from (position, category), executes them and
// replaces the displayed collection wholesale on success. Requests carry a
// monotonically increasing sequence number; a result is applied only when
// its request is still the most recently issued one (last-issued-wins).
type Coordinator struct {
	mu       sync.Mutex
	api      api.Client
	log      logging.Logger
	radiusKm float64

	issued   uint64
	vendors  []models.Vendor
	pos      models.Position
	hasPos   bool
	category models.Category
}

func NewCoordinator(apiClient api.Client, log logging.Logger) *Coordinator {
	if log == nil {
		log = logging.Noop{}
	}
	return &Coordinator{api: apiClient, log: log, radiusKm: DefaultRadiusKm}
}

// Vendors returns a copy of the displayed collection.
func (c *Coordinator) Vendors() []models.Vendor {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}

// Category returns the active filter.
func (c *Coordinator) Category() models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// UpdatePosition records a new position and triggers a fetch, including the
// first transition from no position to a concrete one. Safe to call from
// any goroutine.
func (c *Coordinator) UpdatePosition(ctx context.Context, pos models.Position) error {
	c.mu.Lock()
	c.pos = pos
	c.hasPos = true
	cat := c.category
	c.mu.Unlock()

	return c.fetch(ctx, pos, cat)
}

// SetCategory records a new filter and triggers a fetch when a position is
// known. While the position is absent the reactive trigger stays disarmed;
// only an explicit Refresh engages the fallback coordinate.
func (c *Coordinator) SetCategory(ctx context.Context, cat models.Category) error {
	c.mu.Lock()
	c.category = cat
	pos, ok := c.pos, c.hasPos
	c.mu.Unlock()

	if !ok {
		return nil
	}
	return c.fetch(ctx, pos, cat)
}

// Refresh re-runs the query on explicit request, falling back to the
// default coordinate when no position has been acquired.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.mu.Lock()
	pos, ok := c.pos, c.hasPos
	cat := c.category
	c.mu.Unlock()

	if !ok {
		pos = geo.DefaultPosition
	}
	return c.fetch(ctx, pos, cat)
}

// fetch issues one query and applies the result under the last-issued-wins
// rule. Superseded results, successful or not, are dropped silently. A
// failed current fetch keeps the prior collection and returns ErrFetch.
func (c *Coordinator) fetch(ctx context.Context, pos models.Position, cat models.Category) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	list, err := c.api.Nearby(ctx, api.VendorQuery{
		Position: pos,
		RadiusKm: c.radiusKm,
		Category: cat,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.issued {
		c.log.Info(ctx, "dropping superseded vendor fetch", "seq", seq, "latest", c.issued)
		return nil
	}
	if err != nil {
		c.log.Warn(ctx, "vendor fetch failed", "seq", seq, "err", err)
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	c.vendors = list
	c.log.Info(ctx, "vendor collection replaced", "seq", seq, "count", len(list))
	return nil
}
