package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/client/models"
	pb "github.com/gerich15/TemplateHub/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	dialOptions []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.MarketplaceServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(Tokens)
}

// publicMethods never carry the access token. RefreshToken is what recovers
// from a stale token, so it must not send one.
var publicMethods = map[string]bool{
	pb.MarketplaceService_Ping_FullMethodName:          true,
	pb.MarketplaceService_Register_FullMethodName:      true,
	pb.MarketplaceService_Login_FullMethodName:         true,
	pb.MarketplaceService_RefreshToken_FullMethodName:  true,
	pb.MarketplaceService_Logout_FullMethodName:        true,
	pb.MarketplaceService_ListTemplates_FullMethodName: true,
	pb.MarketplaceService_GetTemplate_FullMethodName:   true,
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if publicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	tokens := s.Tokens()
	err := invoker(withAccessToken(ctx, tokens.AccessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if tokens.RefreshToken == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if rerr != nil {
		return err
	}

	next := Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.SetTokens(next)
	s.mu.Lock()
	cb := s.onRefresh
	s.mu.Unlock()
	if cb != nil {
		cb(next)
	}

	// tokens refreshed, retry once with the new access token
	return invoker(withAccessToken(ctx, next.AccessToken), method, req, reply, cc, opts...)
}

func NewMarketplaceClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOptions: opts}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMarketplaceServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetTokens(t Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t.AccessToken
	s.refreshToken = t.RefreshToken
}

func (s *GRPCClient) Tokens() Tokens {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Tokens{AccessToken: s.accessToken, RefreshToken: s.refreshToken}
}

// OnTokensRefreshed registers fn to be called after a transparent refresh.
func (s *GRPCClient) OnTokensRefreshed(fn func(Tokens)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, email, password string) (int64, error) {

	req := &pb.RegisterRequest{Username: username, Email: email, Password: password}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, login, password string) (Tokens, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Login: login, Password: password})
	if err != nil {
		return Tokens{}, s.mapError(err)
	}

	t := Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.SetTokens(t)
	return t, nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	t := s.Tokens()
	s.SetTokens(Tokens{})
	if t.RefreshToken == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: t.RefreshToken}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*models.User, error) {
	u, err := s.client.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.User{
		ID:        u.GetId(),
		Username:  u.GetUsername(),
		Email:     u.GetEmail(),
		CreatedAt: asTime(u.GetCreatedAt()),
	}, nil
}

func (s *GRPCClient) ListTemplates(ctx context.Context, query string) ([]models.Template, error) {
	resp, err := s.client.ListTemplates(ctx, &pb.ListTemplatesRequest{Query: query})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Template, 0, len(resp.GetTemplates()))
	for _, t := range resp.GetTemplates() {
		tpl, err := toTemplate(t)
		if err != nil {
			return nil, err
		}
		result = append(result, tpl)
	}
	return result, nil
}

func (s *GRPCClient) Purchase(ctx context.Context, templateID int64) (*models.Receipt, error) {
	r, err := s.client.Purchase(ctx, &pb.PurchaseRequest{TemplateId: templateID})
	if err != nil {
		return nil, s.mapError(err)
	}

	price, err := parsePrice(r.GetPrice())
	if err != nil {
		return nil, err
	}
	return &models.Receipt{
		TransactionID: r.GetTransactionId(),
		TemplateID:    r.GetTemplateId(),
		TemplateName:  r.GetTemplateName(),
		Price:         price,
		PurchasedAt:   asTime(r.GetPurchasedAt()),
	}, nil
}

func (s *GRPCClient) AuthorizeDownload(ctx context.Context, templateID int64) (*models.DownloadGrant, error) {
	g, err := s.client.AuthorizeDownload(ctx, &pb.AuthorizeDownloadRequest{TemplateId: templateID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.DownloadGrant{
		Token:        g.GetToken(),
		TemplateID:   g.GetTemplateId(),
		TemplateName: g.GetTemplateName(),
		URL:          g.GetUrl(),
		ExpiresAt:    asTime(g.GetExpiresAt()),
	}, nil
}

func (s *GRPCClient) ListEntitlements(ctx context.Context) ([]models.Entitlement, error) {
	resp, err := s.client.ListEntitlements(ctx, &pb.ListEntitlementsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Entitlement, 0, len(resp.GetEntitlements()))
	for _, e := range resp.GetEntitlements() {
		result = append(result, models.Entitlement{
			TemplateID:   e.GetTemplateId(),
			TemplateName: e.GetTemplateName(),
			PurchasedAt:  asTime(e.GetPurchasedAt()),
		})
	}
	return result, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
