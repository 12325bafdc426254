package grpc

import (
	"context"

	pb "github.com/gerich15/TemplateHub/internal/proto"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/services"
	"github.com/gerich15/TemplateHub/internal/server/session"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	u, err := s.users.Register(ctx, services.RegisterInput{UserName: req.Username, Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", u.UserName, "user_id", u.ID)
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {

	tokens, err := s.users.Login(ctx, req.Login, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, req *pb.WhoAmIRequest) (*pb.User, error) {
	u, err := s.users.Profile(ctx, session.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.User{Id: u.ID, Username: u.UserName, Email: u.Email, CreatedAt: timestamppb.New(u.CreatedAt)}, nil
}

func (s *GRPCServer) ListTemplates(ctx context.Context, req *pb.ListTemplatesRequest) (*pb.ListTemplatesResponse, error) {
	list, err := s.catalog.Search(ctx, req.Query)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListTemplatesResponse{Templates: make([]*pb.Template, 0, len(list))}
	for _, t := range list {
		resp.Templates = append(resp.Templates, toPBTemplate(t))
	}
	return resp, nil
}

func (s *GRPCServer) GetTemplate(ctx context.Context, req *pb.GetTemplateRequest) (*pb.Template, error) {
	t, err := s.catalog.Get(ctx, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBTemplate(*t), nil
}

func (s *GRPCServer) Purchase(ctx context.Context, req *pb.PurchaseRequest) (*pb.Receipt, error) {
	r, err := s.purchases.Purchase(ctx, session.FromContext(ctx), req.TemplateId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Receipt{
		TransactionId: r.TransactionID,
		TemplateId:    r.TemplateID,
		TemplateName:  r.TemplateName,
		Price:         r.Price.String(),
		PurchasedAt:   timestamppb.New(r.PurchasedAt),
	}, nil
}

func (s *GRPCServer) AuthorizeDownload(ctx context.Context, req *pb.AuthorizeDownloadRequest) (*pb.DownloadGrant, error) {
	g, err := s.purchases.AuthorizeDownload(ctx, session.FromContext(ctx), req.TemplateId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DownloadGrant{
		Token:        g.Token,
		TemplateId:   g.TemplateID,
		TemplateName: g.TemplateName,
		Url:          g.URL,
		ExpiresAt:    timestamppb.New(g.ExpiresAt),
	}, nil
}

func (s *GRPCServer) ListEntitlements(ctx context.Context, req *pb.ListEntitlementsRequest) (*pb.ListEntitlementsResponse, error) {
	list, err := s.purchases.ListMyEntitlements(ctx, session.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListEntitlementsResponse{Entitlements: make([]*pb.Entitlement, 0, len(list))}
	for _, e := range list {
		resp.Entitlements = append(resp.Entitlements, &pb.Entitlement{
			TemplateId:   e.TemplateID,
			TemplateName: e.TemplateName,
			PurchasedAt:  timestamppb.New(e.PurchasedAt),
		})
	}
	return resp, nil
}

func toPBTemplate(t models.Template) *pb.Template {
	return &pb.Template{
		Id:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       t.Price.String(),
		Category:    t.Category,
		ImagePath:   t.ImagePath,
	}
}
