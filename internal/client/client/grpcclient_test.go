package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	pb "github.com/gerich15/TemplateHub/internal/proto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gpb "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeServer accepts the access token "fresh" and reports "stale" as expired.
type fakeServer struct {
	pb.UnimplementedMarketplaceServiceServer

	mu            sync.Mutex
	refreshCalls  int
	refreshHadTok bool
	lastQuery     string
	catalogHadTok bool
	purchaseErr   error
	price         string
}

func token(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get("access_token"); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *fakeServer) authorize(ctx context.Context) error {
	switch token(ctx) {
	case "fresh":
		return nil
	case "stale":
		return status.Error(codes.Unauthenticated, "token expired")
	default:
		return status.Error(codes.Unauthenticated, "unauthenticated")
	}
}

func (f *fakeServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (f *fakeServer) Register(ctx context.Context, r *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if r.Username == "taken" {
		return nil, status.Error(codes.AlreadyExists, "already exists: username")
	}
	return &pb.RegisterResponse{UserId: 42}, nil
}

func (f *fakeServer) Login(ctx context.Context, r *pb.LoginRequest) (*pb.TokenResponse, error) {
	if r.Password != "password123" {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return &pb.TokenResponse{AccessToken: "fresh", RefreshToken: "r1"}, nil
}

func (f *fakeServer) RefreshToken(ctx context.Context, r *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	f.refreshHadTok = f.refreshHadTok || token(ctx) != ""
	if r.RefreshToken != "r1" {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return &pb.TokenResponse{AccessToken: "fresh", RefreshToken: "r2"}, nil
}

func (f *fakeServer) Logout(ctx context.Context, r *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	return &pb.LogoutResponse{}, nil
}

func (f *fakeServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.User, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.User{Id: 42, Username: "buyer", CreatedAt: timestamppb.New(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))}, nil
}

func (f *fakeServer) ListTemplates(ctx context.Context, r *pb.ListTemplatesRequest) (*pb.ListTemplatesResponse, error) {
	f.mu.Lock()
	f.lastQuery = r.Query
	f.catalogHadTok = f.catalogHadTok || token(ctx) != ""
	f.mu.Unlock()
	return &pb.ListTemplatesResponse{Templates: []*pb.Template{{Id: 7, Name: "Landing Page", Price: "1990", ImagePath: "images/landing.png"}}}, nil
}

func (f *fakeServer) GetTemplate(ctx context.Context, r *pb.GetTemplateRequest) (*pb.Template, error) {
	return nil, status.Error(codes.NotFound, "not found")
}

func (f *fakeServer) Purchase(ctx context.Context, r *pb.PurchaseRequest) (*pb.Receipt, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	if f.purchaseErr != nil {
		return nil, f.purchaseErr
	}
	price := f.price
	if price == "" {
		price = "19.90"
	}
	return &pb.Receipt{
		TransactionId: "tx-1",
		TemplateId:    r.TemplateId,
		TemplateName:  "Landing Page",
		Price:         price,
		PurchasedAt:   timestamppb.New(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}, nil
}

func (f *fakeServer) AuthorizeDownload(ctx context.Context, r *pb.AuthorizeDownloadRequest) (*pb.DownloadGrant, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	if r.TemplateId == 9 {
		return nil, status.Error(codes.PermissionDenied, "no completed purchase for this template")
	}
	return &pb.DownloadGrant{
		Token:      "grant",
		TemplateId: r.TemplateId,
		Url:        "https://files.test/landing.zip",
		ExpiresAt:  timestamppb.New(time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)),
	}, nil
}

func (f *fakeServer) ListEntitlements(ctx context.Context, _ *pb.ListEntitlementsRequest) (*pb.ListEntitlementsResponse, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.ListEntitlementsResponse{Entitlements: []*pb.Entitlement{{TemplateId: 7, TemplateName: "Landing Page"}}}, nil
}

func newTestClient(t *testing.T) (*GRPCClient, *fakeServer) {
	t.Helper()
	fake := &fakeServer{}

	lis := bufconn.Listen(1 << 20)
	srv := gpb.NewServer()
	pb.RegisterMarketplaceServiceServer(srv, fake)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	c, err := NewMarketplaceClientService("passthrough:///bufnet",
		gpb.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, fake
}

func TestLoginStoresTokens(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	tokens, err := c.Login(ctx, "buyer", "password123")
	require.NoError(t, err)
	assert.Equal(t, Tokens{AccessToken: "fresh", RefreshToken: "r1"}, tokens)
	assert.Equal(t, tokens, c.Tokens())

	me, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, "buyer", me.Username)

	_, err = c.Login(ctx, "buyer", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExpiredAccessTokenIsRefreshed(t *testing.T) {
	c, fake := newTestClient(t)
	c.SetTokens(Tokens{AccessToken: "stale", RefreshToken: "r1"})

	var saved Tokens
	c.OnTokensRefreshed(func(t Tokens) { saved = t })

	lib, err := c.ListEntitlements(context.Background())
	require.NoError(t, err)
	require.Len(t, lib, 1)

	assert.Equal(t, Tokens{AccessToken: "fresh", RefreshToken: "r2"}, saved)
	assert.Equal(t, saved, c.Tokens())
	assert.Equal(t, 1, fake.refreshCalls)
	assert.False(t, fake.refreshHadTok, "refresh must not carry the stale access token")
}

func TestFailedRefreshReturnsOriginalError(t *testing.T) {
	c, fake := newTestClient(t)
	c.SetTokens(Tokens{AccessToken: "stale", RefreshToken: "revoked"})

	_, err := c.WhoAmI(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
	assert.Equal(t, 1, fake.refreshCalls)
}

func TestNoRefreshWithoutRefreshToken(t *testing.T) {
	c, fake := newTestClient(t)
	c.SetTokens(Tokens{AccessToken: "stale"})

	_, err := c.WhoAmI(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, fake.refreshCalls)
}

func TestErrorMapping(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	_, err := c.Register(ctx, "taken", "t@example.com", "password123")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = c.Purchase(ctx, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)

	c.SetTokens(Tokens{AccessToken: "fresh"})
	_, err = c.AuthorizeDownload(ctx, 9)
	assert.ErrorIs(t, err, ErrForbidden)

	fake.purchaseErr = status.Error(codes.NotFound, "not found")
	_, err = c.Purchase(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	fake.purchaseErr = status.Error(codes.Unavailable, "ledger unavailable")
	_, err = c.Purchase(ctx, 7)
	assert.ErrorIs(t, err, ErrUnavailable)

	fake.purchaseErr = status.Error(codes.Internal, "internal error")
	_, err = c.Purchase(ctx, 7)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestCatalogAndLogout(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	c.SetTokens(Tokens{AccessToken: "stale", RefreshToken: "r1"})
	list, err := c.ListTemplates(ctx, "landing")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "landing", fake.lastQuery)
	assert.True(t, list[0].Price.Equal(decimal.NewFromInt(1990)))
	assert.Equal(t, "images/landing.png", list[0].ImagePath)
	assert.False(t, fake.catalogHadTok, "catalog calls must not carry the access token")
	assert.Zero(t, fake.refreshCalls)

	_, err = c.Login(ctx, "buyer", "password123")
	require.NoError(t, err)
	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, Tokens{}, c.Tokens())
	require.NoError(t, c.Logout(ctx))
}

func TestWireConversion(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()
	c.SetTokens(Tokens{AccessToken: "fresh"})

	me, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), me.ID)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), me.CreatedAt)

	r, err := c.Purchase(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.TemplateID)
	assert.True(t, r.Price.Equal(decimal.RequireFromString("19.90")))
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), r.PurchasedAt)

	g, err := c.AuthorizeDownload(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "https://files.test/landing.zip", g.URL)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC), g.ExpiresAt)

	lib, err := c.ListEntitlements(ctx)
	require.NoError(t, err)
	require.Len(t, lib, 1)
	assert.True(t, lib[0].PurchasedAt.IsZero(), "unset timestamps decode as zero time")

	fake.price = "not-a-number"
	_, err = c.Purchase(ctx, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad price")
}
