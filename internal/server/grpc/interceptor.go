package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/rpc"
	"github.com/dmitrijs2005/moodlog/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor reuses the caller's x-request-id or mints one and
// returns it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := firstMetadata(ctx, common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	return handler(logging.WithRequestID(ctx, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Warn(ctx, "grpc request", args...)
	} else {
		s.logger.Info(ctx, "grpc request", args...)
	}
	return resp, err
}

// protected reports whether the method needs an access token. Ping and the
// health service stay open.
func protected(fullMethod string) bool {
	prefix := "/" + rpc.ServiceName + "/"
	return strings.HasPrefix(fullMethod, prefix) && fullMethod != rpc.FullMethod(rpc.MethodPing)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if len(s.jwtSecret) > 0 && protected(info.FullMethod) {

		accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		if _, err := auth.GetSubjectFromToken(accessToken, s.jwtSecret); err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

	}

	return handler(ctx, req)
}
