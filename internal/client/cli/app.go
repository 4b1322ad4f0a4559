package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/prepshare/prepshare/internal/client/api"
	"github.com/prepshare/prepshare/internal/client/cache"
	"github.com/prepshare/prepshare/internal/client/config"
	"github.com/prepshare/prepshare/internal/client/engagement"
	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/client/moderation"
	"github.com/prepshare/prepshare/internal/client/notify"
	"github.com/prepshare/prepshare/internal/client/services"
	"github.com/prepshare/prepshare/internal/client/session"
	"github.com/prepshare/prepshare/internal/logging"
)

// App wires the prepshare CLI: session tracking, the engagement store, the
// moderation queue and the catalog service over one API client and one local
// cache database.
type App struct {
	config   *config.Config
	log      logging.Logger
	sink     notify.Sink
	out      io.Writer
	reader   *bufio.Reader
	provider *session.TokenProvider
	tracker  *session.Tracker
	catalog  services.CatalogService
	votes    *engagement.Store
	queue    *moderation.Queue
	client   api.Client
	repos    *cache.Repositories

	mu       sync.Mutex
	lastList []models.Experience
}

// NewApp builds the application from config. The cache DB is opened (and
// migrated) eagerly; a previously persisted session is restored when still
// valid.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	repos, err := cache.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing cache database: %w", err)
	}

	apiClient, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	provider := session.NewTokenProvider(repos.Metadata)
	if err := provider.Restore(ctx); err != nil {
		log.Warn(ctx, "session restore failed", "err", err)
	}
	tracker := session.NewTracker(provider)

	sink := notify.NewConsoleSink(os.Stdout)
	catalog := services.NewCatalogService(apiClient, repos.Experiences, log)
	votes := engagement.NewStore(tracker, apiClient, sink, log)
	queue := moderation.NewQueue(tracker, apiClient, sink, log)

	app := &App{
		config:   c,
		log:      log,
		sink:     sink,
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
		provider: provider,
		tracker:  tracker,
		catalog:  catalog,
		votes:    votes,
		queue:    queue,
		client:   apiClient,
		repos:    repos,
	}
	votes.SetUpdateHook(app.onExperienceUpdated)
	return app, nil
}

// onExperienceUpdated feeds a confirmed item refresh back into the cached
// feed and the in-memory listing, keeping list views in sync after a toggle.
func (a *App) onExperienceUpdated(exp models.Experience) {
	ctx := context.Background()
	if err := a.catalog.Remember(ctx, exp); err != nil {
		a.log.Warn(ctx, "cache update after toggle failed", "id", exp.ID, "err", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.lastList {
		if a.lastList[i].ID == exp.ID {
			a.lastList[i] = exp
			return
		}
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	fmt.Fprintln(a.out, "Welcome to prepshare (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases every held resource.
func (a *App) Close() {
	a.votes.Close()
	a.tracker.Close()
	_ = a.client.Close()
	_ = a.repos.Close()
}

func (a *App) isLoggedIn() bool {
	return a.tracker.Current() != nil
}

func (a *App) status() string {
	if p := a.tracker.Current(); p != nil {
		return p.UID()
	}
	return "anonymous"
}
