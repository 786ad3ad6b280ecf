// Package widgetcenter carries the "invalidate widget" signal from the
// journal process to the widget host.
//
// The widget host serves a small gRPC service on a unix socket inside the
// shared directory. Requests are best-effort: the journal never waits for
// the widget to redraw and never fails a mutation because the signal was
// lost. The widget host also refreshes on a timer, so a dropped signal only
// delays the update.
package widgetcenter

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "listen.widget.v1.WidgetCenter"

const (
	ReloadTimelinesMethod    = "/" + ServiceName + "/ReloadTimelines"
	ReloadAllTimelinesMethod = "/" + ServiceName + "/ReloadAllTimelines"
)

// WidgetCenterServer is implemented by the widget host.
type WidgetCenterServer interface {
	// ReloadTimelines invalidates the widgets of one kind. It fails with
	// codes.NotFound when no widget of that kind is registered.
	ReloadTimelines(ctx context.Context, kind *wrapperspb.StringValue) (*emptypb.Empty, error)
	// ReloadAllTimelines invalidates every registered widget and returns
	// how many were reloaded.
	ReloadAllTimelines(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int32Value, error)
}

func RegisterWidgetCenterServer(s grpc.ServiceRegistrar, srv WidgetCenterServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func reloadTimelinesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WidgetCenterServer).ReloadTimelines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReloadTimelinesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WidgetCenterServer).ReloadTimelines(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func reloadAllTimelinesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WidgetCenterServer).ReloadAllTimelines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReloadAllTimelinesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WidgetCenterServer).ReloadAllTimelines(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc describes the WidgetCenter service. The messages are protobuf
// well-known types, so no generated code is needed.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WidgetCenterServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ReloadTimelines", Handler: reloadTimelinesHandler},
		{MethodName: "ReloadAllTimelines", Handler: reloadAllTimelinesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "listen/widget/v1/widget_center.proto",
}
