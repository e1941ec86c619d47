package geo

import (
	"context"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/common"
)

// FixedSource reports a preconfigured coordinate, standing in for real
// hardware when the position is supplied via config or flags.
type FixedSource struct {
	Position models.Position
}

func (s FixedSource) Locate(context.Context) (models.Position, error) {
	return s.Position, nil
}

// UnavailableSource always fails, for running without any position source.
type UnavailableSource struct{}

func (UnavailableSource) Locate(context.Context) (models.Position, error) {
	return models.Position{}, common.ErrLocationUnavailable
}
