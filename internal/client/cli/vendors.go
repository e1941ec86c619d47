package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
)

// List renders the displayed vendor collection with distance from the
// position the queries run against.
func (a *App) List(context.Context) error {
	list := a.coordinator.Vendors()
	if len(list) == 0 {
		printlnFn("No vendors to show. Try 'refresh'.")
		return nil
	}

	origin, acquired := a.provider.QueryPosition()
	if !acquired {
		printlnFn("Showing the default area. Use 'locate' to search around you.")
	}

	for _, v := range list {
		line := fmt.Sprintf("%-24s %-10s %4.1f km", v.Name, v.Category, origin.DistanceKm(v.Location))
		if v.Phone != "" {
			line += "  " + v.Phone
		}
		if v.Address != "" {
			line += "  " + v.Address
		}
		printlnFn(line)
	}
	return nil
}

// SetCategory changes the filter and lets the coordinator refetch.
func (a *App) SetCategory(ctx context.Context, arg string) error {
	cat, ok := models.ParseCategory(arg)
	if !ok {
		names := make([]string, 0, len(models.Categories))
		for _, c := range models.Categories {
			names = append(names, string(c))
		}
		printlnFn("Unknown category. Choose one of: all, " + strings.Join(names, ", "))
		return nil
	}

	if err := a.coordinator.SetCategory(ctx, cat); err != nil {
		printlnFn("Could not load nearby vendors.")
		return nil
	}
	return a.List(ctx)
}

// Locate re-acquires the device position; a fresh fix triggers a refetch.
func (a *App) Locate(ctx context.Context) error {
	pos, err := a.provider.Refresh(ctx)
	if err != nil {
		printlnFn("Could not determine your location.")
		return nil
	}

	printlnFn(fmt.Sprintf("Position: %.4f, %.4f", pos.Latitude, pos.Longitude))
	if err := a.coordinator.UpdatePosition(ctx, pos); err != nil {
		printlnFn("Could not load nearby vendors.")
	}
	return nil
}

// Refresh re-runs the vendor query on explicit request, using the default
// coordinate when no fix exists.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.coordinator.Refresh(ctx); err != nil {
		printlnFn("Could not load nearby vendors.")
		return nil
	}
	return a.List(ctx)
}

// SetTheme persists the UI theme preference; called without an argument it
// reports the current one. The store is the single source of the value.
func (a *App) SetTheme(ctx context.Context, arg string) error {
	if arg == "" {
		snap, err := a.store.Load(ctx)
		if err != nil {
			a.log.Error(ctx, "failed to load theme", "err", err)
			return nil
		}
		theme := snap.Theme
		if theme == "" {
			theme = models.ThemeLight
		}
		printlnFn("Current theme: " + string(theme))
		return nil
	}

	theme, ok := models.ParseTheme(arg)
	if !ok {
		printlnFn("Unknown theme. Choose light or dark.")
		return nil
	}

	if err := a.store.SaveTheme(ctx, theme); err != nil {
		a.log.Error(ctx, "failed to persist theme", "err", err)
	}
	printlnFn("Theme set to " + string(theme) + ".")
	return nil
}
