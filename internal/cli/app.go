package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/dmitrijs2005/listen/internal/services"
	"github.com/dmitrijs2005/listen/internal/stats"
)

type App struct {
	journal *services.Journal
	reader  *bufio.Reader
	out     io.Writer
	logger  logging.Logger
	now     func() time.Time

	mu     sync.Mutex
	status models.StatsSnapshot
}

func NewApp(j *services.Journal, in io.Reader, out io.Writer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &App{
		journal: j,
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  logger.With("module", "cli"),
		now:     time.Now,
	}
}

// Run loads the journal and serves commands until EOF or "exit".
func (a *App) Run(ctx context.Context) {
	a.journal.Start(ctx)
	a.setStatus(a.journal.GetStatsSnapshot())

	unsubscribe := a.journal.Entries.Subscribe(func(entries []models.DiaryEntry) {
		a.setStatus(stats.Compute(entries, a.now()))
	})
	defer unsubscribe()

	a.printf("Welcome to Listen (type 'help' for commands)\n")
	p, ok := a.journal.LoadProfile(ctx)
	switch {
	case !ok:
		a.printf("No profile yet, run 'setup' to create one.\n")
	case p.DailyReminders && p.PreferredWritingTime.Contains(a.now()):
		a.printf("It's your %s writing time.\n", p.PreferredWritingTime)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) setStatus(s models.StatsSnapshot) {
	a.mu.Lock()
	a.status = s
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	s := a.status
	a.mu.Unlock()
	return fmt.Sprintf("(%d entries, %d-day streak)", s.TotalEntries, s.StreakDays)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
