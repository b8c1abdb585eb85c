package grpc

import (
	"context"

	"github.com/dmitrijs2005/moodlog/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// JournalServiceServer is the server API of moodlog.v1.JournalService.
// Every request and response is a google.protobuf.Struct.
type JournalServiceServer interface {
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEntries(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEntry(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteAllEntries(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetOverview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetActivityFeedback(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetThoughtsFeedback(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDailyAchievements(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(JournalServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryMethod) grpc.MethodDesc {
	fullMethod := rpc.FullMethod(method)
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(JournalServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(JournalServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// JournalServiceDesc describes moodlog.v1.JournalService for grpc.Server.
var JournalServiceDesc = grpc.ServiceDesc{
	ServiceName: rpc.ServiceName,
	HandlerType: (*JournalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(rpc.MethodPing, JournalServiceServer.Ping),
		unaryHandler(rpc.MethodCreateEntry, JournalServiceServer.CreateEntry),
		unaryHandler(rpc.MethodListEntries, JournalServiceServer.ListEntries),
		unaryHandler(rpc.MethodUpdateEntry, JournalServiceServer.UpdateEntry),
		unaryHandler(rpc.MethodDeleteEntry, JournalServiceServer.DeleteEntry),
		unaryHandler(rpc.MethodDeleteAllEntries, JournalServiceServer.DeleteAllEntries),
		unaryHandler(rpc.MethodGetOverview, JournalServiceServer.GetOverview),
		unaryHandler(rpc.MethodGetActivityFeedback, JournalServiceServer.GetActivityFeedback),
		unaryHandler(rpc.MethodGetThoughtsFeedback, JournalServiceServer.GetThoughtsFeedback),
		unaryHandler(rpc.MethodGetDailyAchievements, JournalServiceServer.GetDailyAchievements),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moodlog/v1/journal.proto",
}

// RegisterJournalServiceServer registers srv on s.
func RegisterJournalServiceServer(s grpc.ServiceRegistrar, srv JournalServiceServer) {
	s.RegisterService(&JournalServiceDesc, srv)
}
