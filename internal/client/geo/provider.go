// Package geo acquires the device position. The actual geolocation hardware
// sits behind the Source interface; the Provider tracks the last received
// fix and supplies the fallback default for queries issued before any fix.
package geo

import (
	"context"
	"errors"
	"sync"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/common"
	"github.com/fahadsheikh/rescuepoint/internal/logging"
)

// DefaultPosition is the fallback coordinate used for queries when no fix
// has ever been received. It is never published as an acquired fix.
var DefaultPosition = models.Position{Latitude: 24.8607, Longitude: 67.0011}

// Source is the device geolocation boundary. Implementations return
// common.ErrPermissionDenied or common.ErrLocationUnavailable on failure.
type Source interface {
	Locate(ctx context.Context) (models.Position, error)
}

// Provider publishes the most recently received fix. Acquisition calls are
// independent; whichever fix arrives last wins, regardless of request order.
type Provider struct {
	mu     sync.Mutex
	source Source
	log    logging.Logger
	pos    *models.Position
}

func NewProvider(source Source, log logging.Logger) *Provider {
	if log == nil {
		log = logging.Noop{}
	}
	return &Provider{source: source, log: log}
}

// AcquireOnce requests a single fix and publishes it on success. On failure
// the published position is left untouched and the error is returned with
// its category intact. No automatic retry.
func (p *Provider) AcquireOnce(ctx context.Context) (models.Position, error) {
	pos, err := p.source.Locate(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrPermissionDenied) && !errors.Is(err, common.ErrLocationUnavailable) {
			err = errors.Join(common.ErrLocationUnavailable, err)
		}
		p.log.Warn(ctx, "position acquisition failed", "err", err)
		return models.Position{}, err
	}

	p.mu.Lock()
	p.pos = &pos
	p.mu.Unlock()

	p.log.Info(ctx, "position acquired", "lat", pos.Latitude, "lng", pos.Longitude)
	return pos, nil
}

// Refresh re-requests a fix with the same contract as AcquireOnce.
func (p *Provider) Refresh(ctx context.Context) (models.Position, error) {
	return p.AcquireOnce(ctx)
}

// Current returns the last acquired fix, and false if none has arrived yet.
func (p *Provider) Current() (models.Position, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos == nil {
		return models.Position{}, false
	}
	return *p.pos, true
}

// QueryPosition returns the position a query should use: the last fix when
// one exists, the fallback default otherwise. The boolean reports whether
// the value is an acquired fix, so callers can tell "here" from "default".
func (p *Provider) QueryPosition() (models.Position, bool) {
	if pos, ok := p.Current(); ok {
		return pos, true
	}
	return DefaultPosition, false
}
