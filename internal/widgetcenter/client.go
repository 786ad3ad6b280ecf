package widgetcenter

import (
	"context"
	"time"

	"github.com/dmitrijs2005/listen/internal/filex"
	"github.com/dmitrijs2005/listen/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DefaultTimeout bounds a single reload request.
const DefaultTimeout = 500 * time.Millisecond

// Client sends reload requests to the widget host. Every failure is logged
// and dropped.
type Client struct {
	cc      grpc.ClientConnInterface
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  logging.Logger
}

// Dial prepares a client for the widget host socket. The connection is made
// lazily, so a widget host that is not running is not an error here.
func Dial(socketPath string, timeout time.Duration, logger logging.Logger) (*Client, error) {
	path, err := filex.ExpandPath(socketPath)
	if err != nil {
		return nil, err
	}
	conn, err := grpc.NewClient("unix://"+path, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	c := NewClient(conn, timeout, logger)
	c.conn = conn
	return c, nil
}

// NewClient wraps an existing connection.
func NewClient(cc grpc.ClientConnInterface, timeout time.Duration, logger logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Client{cc: cc, timeout: timeout, logger: logger.With("module", "widget_client")}
}

// Reload invalidates widgets of kind, or every widget when kind is not
// registered with the host.
func (c *Client) Reload(ctx context.Context, kind string) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.cc.Invoke(ctx, ReloadTimelinesMethod, wrapperspb.String(kind), new(emptypb.Empty))
	if err == nil {
		c.logger.Debug(ctx, "widget reloaded", "kind", kind)
		return
	}
	if status.Code(err) != codes.NotFound {
		c.logger.Debug(ctx, "widget signal dropped", "kind", kind, "error", err)
		return
	}

	n := new(wrapperspb.Int32Value)
	if err := c.cc.Invoke(ctx, ReloadAllTimelinesMethod, new(emptypb.Empty), n); err != nil {
		c.logger.Debug(ctx, "widget signal dropped", "kind", "*", "error", err)
		return
	}
	c.logger.Debug(ctx, "kind not registered, reloaded all widgets", "kind", kind, "reloaded", n.GetValue())
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
