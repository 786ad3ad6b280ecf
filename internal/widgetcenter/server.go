package widgetcenter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"sort"
	"sync"

	"github.com/dmitrijs2005/listen/internal/filex"
	"github.com/dmitrijs2005/listen/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ReloadFunc invalidates one widget's timeline. It must not block.
type ReloadFunc func()

// Center is the widget host's registry of widget kinds.
type Center struct {
	logger logging.Logger

	mu    sync.RWMutex
	kinds map[string]ReloadFunc
}

func NewCenter(logger logging.Logger) *Center {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Center{logger: logger.With("module", "widgetcenter"), kinds: map[string]ReloadFunc{}}
}

// Register installs fn as the reload hook of kind, replacing any earlier one.
func (c *Center) Register(kind string, fn ReloadFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kinds[kind] = fn
}

// Kinds lists the registered kinds in sorted order.
func (c *Center) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.kinds))
	for k := range c.kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (c *Center) ReloadTimelines(ctx context.Context, kind *wrapperspb.StringValue) (*emptypb.Empty, error) {
	c.mu.RLock()
	fn, ok := c.kinds[kind.GetValue()]
	c.mu.RUnlock()
	if !ok {
		return nil, status.Errorf(codes.NotFound, "widget kind %q not registered", kind.GetValue())
	}
	fn()
	return &emptypb.Empty{}, nil
}

func (c *Center) ReloadAllTimelines(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int32Value, error) {
	c.mu.RLock()
	fns := make([]ReloadFunc, 0, len(c.kinds))
	for _, fn := range c.kinds {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
	return wrapperspb.Int32(int32(len(fns))), nil
}

func (c *Center) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		c.logger.Debug(ctx, "widget request rejected", "method", info.FullMethod, "code", status.Code(err).String())
	} else {
		c.logger.Debug(ctx, "widget request served", "method", info.FullMethod)
	}
	return resp, err
}

// Serve accepts requests on lis until ctx is done or the server fails.
func (c *Center) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(c.loggingInterceptor))
	RegisterWidgetCenterServer(srv, c)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.logger.Info(ctx, "Stopping widget center...")
			srv.GracefulStop()
		case <-done:
		}
	}()

	c.logger.Info(ctx, "Starting widget center", "address", lis.Addr().String(), "kinds", c.Kinds())

	if err := srv.Serve(lis); err != nil {
		srv.Stop()
		return err
	}
	return nil
}

// Run listens on the unix socket at socketPath, replacing a stale socket
// left by an earlier run, and serves until ctx is done.
func (c *Center) Run(ctx context.Context, socketPath string) error {
	path, err := filex.EnsureParentDir(socketPath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale socket: %w", err)
	}

	lis, err := net.Listen("unix", path)
	if err != nil {
		return err
	}
	defer os.Remove(path)

	return c.Serve(ctx, lis)
}
