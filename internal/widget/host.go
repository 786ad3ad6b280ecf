package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/listen/internal/common"
	"github.com/dmitrijs2005/listen/internal/logging"
	"github.com/dmitrijs2005/listen/internal/models"
	"github.com/dmitrijs2005/listen/internal/storage"
	"github.com/dmitrijs2005/listen/internal/widgetcenter"
)

// Options configure the widget host.
type Options struct {
	Store      storage.Reader
	SocketPath string
	Kind       string

	RefreshInterval   time.Duration
	ImmediateInterval time.Duration

	ThemeName string
	PrefsPath string

	// Headless prints one line per refresh to Out instead of running the
	// interactive card.
	Headless bool
	Out      io.Writer

	Logger logging.Logger
}

// Run hosts the widget until ctx is done: it serves reload requests on the
// socket, refreshes the timeline and renders it.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	if opts.Kind == "" {
		opts.Kind = common.DefaultWidgetKind
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timeline := &Timeline{}
	pollOpts := PollerOptions{Interval: opts.RefreshInterval, Immediate: opts.ImmediateInterval}
	if opts.Headless && opts.Out != nil {
		var mu sync.Mutex
		pollOpts.OnRefresh = func(e models.TimelineEntry) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintln(opts.Out, Line(e))
		}
	}
	poller := NewPoller(NewProvider(opts.Store, logger, nil), timeline, logger, pollOpts)

	center := widgetcenter.NewCenter(logger)
	center.Register(opts.Kind, poller.Invalidate)

	// Without the socket the host still refreshes on its timer.
	var wg sync.WaitGroup
	if opts.SocketPath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := center.Run(ctx, opts.SocketPath); err != nil {
				logger.Warn(ctx, "widget center unavailable, timer refresh only", "error", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Run(ctx)
	}()

	var runErr error
	if opts.Headless {
		<-ctx.Done()
	} else {
		m := NewModel(ModelOptions{
			Timeline:   timeline,
			Invalidate: poller.Invalidate,
			ThemeName:  opts.ThemeName,
			PrefsPath:  opts.PrefsPath,
		})
		_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			runErr = err
		}
	}

	cancel()
	wg.Wait()
	return runErr
}
