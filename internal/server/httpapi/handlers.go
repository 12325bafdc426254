package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/server/services"
	"github.com/gerich15/TemplateHub/internal/server/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const maxBodyBytes = 1 << 20

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TemplateID is a pointer so a missing field is told apart from zero. Ids
// that name no template are left to the service, which answers not found.
type purchaseRequest struct {
	TemplateID *int64 `json:"template_id" validate:"required"`
}

// decode reads a JSON body into v and validates it.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %v", common.ErrValidation, err)
	}
	if err := validate.Struct(v); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
		}
		return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(fields, ", "))
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", common.ErrValidation, name)
	}
	return id, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{Status: "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	u, err := s.users.Register(r.Context(), services.RegisterInput{UserName: req.Username, Email: req.Email, Password: req.Password})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tokens, err := s.users.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tokens, err := s.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.users.Logout(r.Context(), req.RefreshToken); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.Profile(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := listTemplatesResponse{Templates: make([]templateResponse, 0, len(list))}
	for _, t := range list {
		resp.Templates = append(resp.Templates, toTemplate(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	t, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplate(*t))
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	caller := session.FromContext(r.Context())
	if !caller.Authenticated() {
		s.writeError(w, r, common.ErrUnauthenticated)
		return
	}

	var req purchaseRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	receipt, err := s.purchases.Purchase(r.Context(), caller, *req.TemplateID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receiptResponse{
		TransactionID: receipt.TransactionID,
		TemplateID:    receipt.TemplateID,
		TemplateName:  receipt.TemplateName,
		Price:         receipt.Price,
		PurchasedAt:   receipt.PurchasedAt,
	})
}

func (s *Server) handleAuthorizeDownload(w http.ResponseWriter, r *http.Request) {
	caller := session.FromContext(r.Context())
	if !caller.Authenticated() {
		s.writeError(w, r, common.ErrUnauthenticated)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := s.purchases.AuthorizeDownload(r.Context(), caller, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, downloadGrantResponse{
		Token:        g.Token,
		TemplateID:   g.TemplateID,
		TemplateName: g.TemplateName,
		URL:          g.URL,
		ExpiresAt:    g.ExpiresAt,
	})
}

func (s *Server) handleLibrary(w http.ResponseWriter, r *http.Request) {
	list, err := s.purchases.ListMyEntitlements(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := listEntitlementsResponse{Entitlements: make([]entitlementResponse, 0, len(list))}
	for _, e := range list {
		resp.Entitlements = append(resp.Entitlements, entitlementResponse{
			TemplateID:   e.TemplateID,
			TemplateName: e.TemplateName,
			PurchasedAt:  e.PurchasedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRedeemGrant is the file edge: a valid grant redirects to storage.
func (s *Server) handleRedeemGrant(w http.ResponseWriter, r *http.Request) {
	url, err := s.purchases.RedeemGrant(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}
