package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	pb "github.com/gerich15/TemplateHub/internal/proto"
	"github.com/gerich15/TemplateHub/internal/server/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods never look at the access token, so a stale token left in
// client metadata cannot lock a caller out of login or the catalog.
var publicMethods = map[string]bool{
	pb.MarketplaceService_Ping_FullMethodName:          true,
	pb.MarketplaceService_Register_FullMethodName:      true,
	pb.MarketplaceService_Login_FullMethodName:         true,
	pb.MarketplaceService_RefreshToken_FullMethodName:  true,
	pb.MarketplaceService_Logout_FullMethodName:        true,
	pb.MarketplaceService_ListTemplates_FullMethodName: true,
	pb.MarketplaceService_GetTemplate_FullMethodName:   true,
}

// accessTokenInterceptor resolves the caller once per request. Public methods
// and requests without a token run as anonymous and the services decide
// whether that is enough; on any other method a token that is present but
// invalid is rejected here.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	accessToken := tokenFromMetadata(ctx)
	if accessToken == "" || publicMethods[info.FullMethod] {
		return handler(session.WithCaller(ctx, session.Anonymous()), req)
	}

	caller, err := s.users.Authenticate(accessToken)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(session.WithCaller(ctx, caller), req)
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return values[0]
	}
	if values := md.Get(strings.ToLower(common.AuthorizationHeaderName)); len(values) > 0 {
		return strings.TrimPrefix(values[0], "Bearer ")
	}
	return ""
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.logger.Info(ctx, "grpc request",
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	)
	return resp, err
}
