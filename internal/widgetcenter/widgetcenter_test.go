package widgetcenter

import (
	"context"
	"net"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func startBufconn(t *testing.T, c *Center) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("widget center did not stop")
		}
	})
	return conn
}

func TestCenter_ReloadTimelines(t *testing.T) {
	c := NewCenter(nil)
	var hits atomic.Int32
	c.Register("Info_Widget", func() { hits.Add(1) })
	conn := startBufconn(t, c)
	ctx := context.Background()

	err := conn.Invoke(ctx, ReloadTimelinesMethod, wrapperspb.String("Info_Widget"), new(emptypb.Empty))
	require.NoError(t, err)
	require.EqualValues(t, 1, hits.Load())

	err = conn.Invoke(ctx, ReloadTimelinesMethod, wrapperspb.String("Other"), new(emptypb.Empty))
	require.Equal(t, codes.NotFound, status.Code(err))

	n := new(wrapperspb.Int32Value)
	require.NoError(t, conn.Invoke(ctx, ReloadAllTimelinesMethod, new(emptypb.Empty), n))
	require.EqualValues(t, 1, n.GetValue())
	require.EqualValues(t, 2, hits.Load())
}

func TestClient_FallsBackToReloadAll(t *testing.T) {
	c := NewCenter(nil)
	var a, b atomic.Int32
	c.Register("A", func() { a.Add(1) })
	c.Register("B", func() { b.Add(1) })
	client := NewClient(startBufconn(t, c), time.Second, nil)
	ctx := context.Background()

	client.Reload(ctx, "A")
	require.EqualValues(t, 1, a.Load())
	require.EqualValues(t, 0, b.Load())

	client.Reload(ctx, "missing")
	require.EqualValues(t, 2, a.Load())
	require.EqualValues(t, 1, b.Load())
}

func TestClient_HostUnreachable(t *testing.T) {
	client, err := Dial(filepath.Join(t.TempDir(), "absent.sock"), 200*time.Millisecond, nil)
	require.NoError(t, err)
	defer client.Close()

	start := time.Now()
	require.NotPanics(t, func() { client.Reload(context.Background(), "Info_Widget") })
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestCenter_RunOnUnixSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "group", "widget.sock")
	c := NewCenter(nil)
	reloaded := make(chan struct{}, 1)
	c.Register("Info_Widget", func() { reloaded <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, sock) }()

	client, err := Dial(sock, time.Second, nil)
	require.NoError(t, err)
	defer client.Close()

	require.Eventually(t, func() bool {
		client.Reload(context.Background(), "Info_Widget")
		select {
		case <-reloaded:
			return true
		default:
			return false
		}
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestCenter_RegistryOps(t *testing.T) {
	c := NewCenter(nil)
	c.Register("b", func() {})
	c.Register("a", func() {})
	c.Register("b", func() {})
	require.Equal(t, []string{"a", "b"}, c.Kinds())

	_, err := c.ReloadTimelines(context.Background(), wrapperspb.String("c"))
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestCenter_ServeReturnsOnListenerFailure(t *testing.T) {
	lis := bufconn.Listen(1 << 10)
	require.NoError(t, lis.Close())

	// ctx is never cancelled: Serve must still return once the listener fails.
	done := make(chan error, 1)
	go func() { done <- NewCenter(nil).Serve(context.Background(), lis) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after listener failure")
	}
}
