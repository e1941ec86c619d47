// Package cli is the terminal presentation layer: it wires the session
// manager, location provider and vendor query coordinator into a REPL and
// renders their state as text. The map/tile view is a separate component;
// this package only publishes the data it would consume.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/fahadsheikh/rescuepoint/internal/client/api"
	"github.com/fahadsheikh/rescuepoint/internal/client/config"
	"github.com/fahadsheikh/rescuepoint/internal/client/geo"
	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/client/session"
	"github.com/fahadsheikh/rescuepoint/internal/client/store"
	"github.com/fahadsheikh/rescuepoint/internal/client/vendors"
	"github.com/fahadsheikh/rescuepoint/internal/logging"
)

// App is the controller context object: it owns every component lifecycle
// and is the only holder of mutable client state.
type App struct {
	config      *config.Config
	log         logging.Logger
	store       store.Store
	session     *session.Manager
	provider    *geo.Provider
	coordinator *vendors.Coordinator
	reader      *bufio.Reader
}

// parsePositionFix turns a "lat,lng" string into a position source.
// An empty or malformed value yields a source that reports unavailability.
func parsePositionFix(fix string) geo.Source {
	parts := strings.Split(fix, ",")
	if len(parts) != 2 {
		return geo.UnavailableSource{}
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return geo.UnavailableSource{}
	}
	return geo.FixedSource{Position: models.Position{Latitude: lat, Longitude: lng}}
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Noop{}
	}

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	st := store.NewSQLiteStore(db)

	clientID, err := st.ClientID(ctx)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, clientID, &http.Client{
		Timeout: cfg.RequestTimeout,
	})

	provider := geo.NewProvider(parsePositionFix(cfg.PositionFix), log)

	return &App{
		config:      cfg,
		log:         log,
		store:       st,
		session:     session.NewManager(apiClient, st, log),
		provider:    provider,
		coordinator: vendors.NewCoordinator(apiClient, log),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores persisted state, kicks off the background verification and
// position flows, and enters the REPL. Restore completes before the first
// verification is issued; everything after that races freely.
func (a *App) Run(ctx context.Context) {
	snap, err := a.session.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	if snap.Status == models.StatusVerifying {
		go func() {
			// failure resolves to the login gate without a message
			a.session.Verify(ctx)
		}()
	}

	go func() {
		pos, aerr := a.provider.AcquireOnce(ctx)
		if aerr != nil {
			printlnFn("Could not determine your location; showing the default area.")
			return
		}
		if ferr := a.coordinator.UpdatePosition(ctx, pos); ferr != nil {
			printlnFn("Could not load nearby vendors.")
		}
	}()

	printlnFn("Welcome to RescuePoint (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) loggedIn() bool {
	return a.session.Current().LoggedIn()
}

// getStatus renders the prompt suffix: who is browsing and whether the
// position is an acquired fix or the fallback default.
func (a *App) getStatus() string {
	s := a.session.Current()

	who := "anonymous"
	switch {
	case s.LoggedIn() && s.User != nil && s.User.Name != "":
		who = s.User.Name
	case s.LoggedIn():
		who = "signed in"
	case s.Status == models.StatusGuest:
		who = "guest"
	}

	where := "default area"
	if _, acquired := a.provider.Current(); acquired {
		where = "located"
	}

	return fmt.Sprintf("(%s, %s)", who, where)
}
