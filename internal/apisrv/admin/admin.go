// Package admin serves the staff-facing API: order management, members,
// masters, claims and the dashboard statistics.
package admin

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/printline/printline-manager/internal/apisrv/auth"
	"github.com/printline/printline-manager/internal/apisrv/respond"
	"github.com/printline/printline-manager/internal/dependency"
	"github.com/printline/printline-manager/internal/dto"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/printline/printline-manager/internal/intake"
	"github.com/printline/printline-manager/internal/roles"
)

const maxBodyBytes = 1 << 20

// Server implements handlers for admin.
type Server struct {
	repo     dependency.Repository
	pipeline *intake.Pipeline
	dict     dependency.Dictionary
	authSrv  *auth.Server
}

// New creates a new server with admin handlers.
func New(
	r dependency.Repository,
	pipeline *intake.Pipeline,
	dict dependency.Dictionary,
	authSrv *auth.Server,
) *Server {
	return &Server{
		repo:     r,
		pipeline: pipeline,
		dict:     dict,
		authSrv:  authSrv,
	}
}

// Routes mounts the admin endpoints. The caller is expected to have run
// the token middleware already; per-route permissions are enforced here.
func (s *Server) Routes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.With(auth.RequirePermission(roles.OrdersView)).Get("/", s.handleListOrders)
		r.With(auth.RequirePermission(roles.OrdersView)).Get("/{id}", s.handleGetOrder)
		r.With(auth.RequirePermission(roles.OrdersEdit)).Put("/{id}", s.handleUpdateOrder)
		r.With(auth.RequirePermission(roles.OrdersDelete)).Delete("/{id}", s.handleDeleteOrder)
		r.With(auth.RequirePermission(roles.ClaimsView)).Get("/{id}/claims", s.handleListOrderClaims)
	})

	r.Route("/members", func(r chi.Router) {
		r.With(auth.RequirePermission(roles.MembersView)).Get("/", s.handleListMembers)
		r.With(auth.RequirePermission(roles.MembersCreate)).Post("/", s.handleAddMember)
		r.With(auth.RequirePermission(roles.MembersEdit)).Put("/{id}", s.handleUpdateMember)
		r.With(auth.RequirePermission(roles.MembersDelete)).Delete("/{id}", s.handleDeactivateMember)
	})

	r.Route("/masters", func(r chi.Router) {
		r.With(auth.RequirePermission(roles.MastersView)).Get("/{category}", s.handleListMasters)
		r.With(auth.RequirePermission(roles.MastersCreate)).Post("/{category}", s.handleAddMaster)
		r.With(auth.RequirePermission(roles.MastersEdit)).Put("/{category}/{id}", s.handleUpdateMaster)
		r.With(auth.RequirePermission(roles.MastersDelete)).Delete("/{category}/{id}", s.handleDeactivateMaster)
	})

	r.Route("/claims", func(r chi.Router) {
		r.With(auth.RequirePermission(roles.ClaimsView)).Get("/", s.handleListClaims)
		r.With(auth.RequirePermission(roles.ClaimsCreate)).Post("/", s.handleAddClaim)
		r.With(auth.RequirePermission(roles.ClaimsView)).Get("/{id}", s.handleGetClaim)
		r.With(auth.RequirePermission(roles.ClaimsEdit)).Put("/{id}", s.handleUpdateClaim)
		r.With(auth.RequirePermission(roles.ClaimsResolve)).Post("/{id}/status", s.handleSetClaimStatus)
	})

	r.With(auth.RequirePermission(roles.DashboardStatistics)).Get("/statistics", s.handleStatistics)
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// ORDERS

type orderListResponse struct {
	Orders []entity.Order `json:"orders"`
	Total  int            `json:"total"`
	Page   int            `json:"page"`
	Size   int            `json:"size"`
}

func (o *orderListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	q := entity.OrderQuery{
		Keyword:           qv.Get("keyword"),
		StatusCode:        qv.Get("status"),
		PaymentStatusCode: qv.Get("paymentStatus"),
		ServiceTypeCode:   qv.Get("serviceType"),
	}
	q.Page, _ = strconv.Atoi(qv.Get("page"))
	q.Size, _ = strconv.Atoi(qv.Get("size"))

	rows, total, err := s.repo.Orders().ListOrderRows(r.Context(), q)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list orders",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, respond.Error(err))
		return
	}

	orders := make([]entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, *dto.OrderFromRow(row))
	}
	render.Render(w, r, &orderListResponse{
		Orders: orders,
		Total:  total,
		Page:   q.Page,
		Size:   q.Limit(),
	})
}

type orderResponse struct {
	*entity.Order
}

func (o *orderResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	order, err := s.pipeline.Fetch(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &orderResponse{Order: order})
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	order, err := s.pipeline.Update(r.Context(), id, raw)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &orderResponse{Order: order})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if _, err := s.pipeline.Fetch(r.Context(), id); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	if err := s.repo.Orders().DeleteOrder(r.Context(), id); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

// MEMBERS

type memberRequest struct {
	UserName string `json:"userName"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	RoleCode string `json:"roleCode"`
	Active   *bool  `json:"active"`
	Password string `json:"password"`
}

type memberResponse struct {
	dto.MemberView
}

func (m *memberResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type memberListResponse struct {
	Members []dto.MemberView `json:"members"`
}

func (m *memberListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	members, err := s.repo.Members().ListMembers(r.Context(), activeOnly)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &memberListResponse{Members: dto.ConvertMembers(members)})
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if req.UserName == "" || req.Password == "" {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("userName and password are required")))
		return
	}
	if req.Email != "" && !v.IsEmail(req.Email) {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("invalid email")))
		return
	}
	if !roles.ValidRole(req.RoleCode) {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("unknown role code")))
		return
	}
	// Only a super admin can mint another admin-level account.
	if roles.IsAdminRole(req.RoleCode) && auth.RoleFromContext(r.Context()) != roles.SuperAdmin {
		render.Render(w, r, respond.ErrForbidden())
		return
	}

	hash, err := s.authSrv.HashPassword(req.Password)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	id, err := s.repo.Members().AddMember(r.Context(), &entity.MemberInsert{
		UserName:     strings.ToLower(req.UserName),
		Nickname:     req.Nickname,
		Email:        req.Email,
		RoleCode:     req.RoleCode,
		Active:       active,
		PasswordHash: hash,
	})
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}

	m, err := s.repo.Members().GetMemberById(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &memberResponse{MemberView: dto.ConvertMember(m)})
}

func (s *Server) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	var req memberRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	if req.Email != "" && !v.IsEmail(req.Email) {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("invalid email")))
		return
	}

	current, err := s.repo.Members().GetMemberById(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}

	roleCode := current.RoleCode
	if req.RoleCode != "" && req.RoleCode != current.RoleCode {
		// Role changes are a separate, super-admin-only capability.
		if !roles.HasPermission(auth.RoleFromContext(r.Context()), roles.MembersManageRoles) {
			render.Render(w, r, respond.ErrForbidden())
			return
		}
		if !roles.ValidRole(req.RoleCode) {
			render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("unknown role code")))
			return
		}
		roleCode = req.RoleCode
	}

	active := current.Active
	if req.Active != nil {
		active = *req.Active
	}
	upd := &entity.MemberInsert{
		Nickname: req.Nickname,
		Email:    req.Email,
		RoleCode: roleCode,
		Active:   active,
	}
	if err := s.repo.Members().UpdateMember(r.Context(), id, upd); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}

	m, err := s.repo.Members().GetMemberById(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &memberResponse{MemberView: dto.ConvertMember(m)})
}

// handleDeactivateMember disables the account instead of deleting the row;
// orders keep their owner references.
func (s *Server) handleDeactivateMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if _, err := s.repo.Members().GetMemberById(r.Context(), id); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	if err := s.repo.Members().SetMemberActive(r.Context(), id, false); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

// MASTERS

func categoryParam(r *http.Request) (entity.MasterCategory, error) {
	category := entity.MasterCategory(chi.URLParam(r, "category"))
	for _, known := range entity.MasterCategories {
		if category == known {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown master category")
}

type masterRequest struct {
	Code      string          `json:"code"`
	Label     string          `json:"label"`
	SortOrder int             `json:"sortOrder"`
	Active    *bool           `json:"active"`
	Extra     json.RawMessage `json:"extra"`
}

type masterListResponse struct {
	Items []dto.MasterItemView `json:"items"`
}

func (m *masterListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleListMasters(w http.ResponseWriter, r *http.Request) {
	category, err := categoryParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	items, err := s.repo.Masters().ListMasterItems(r.Context(), category)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &masterListResponse{Items: dto.ConvertMasterItems(items)})
}

func (s *Server) masterFromRequest(category entity.MasterCategory, req *masterRequest) *entity.MasterItem {
	item := &entity.MasterItem{
		Category:  category,
		Code:      req.Code,
		Label:     req.Label,
		SortOrder: req.SortOrder,
		Active:    true,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if len(req.Extra) > 0 {
		item.Extra.Valid = true
		item.Extra.String = string(req.Extra)
	}
	return item
}

func (s *Server) handleAddMaster(w http.ResponseWriter, r *http.Request) {
	category, err := categoryParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	var req masterRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if req.Code == "" || req.Label == "" {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("code and label are required")))
		return
	}

	item := s.masterFromRequest(category, &req)
	id, err := s.repo.Masters().AddMasterItem(r.Context(), item)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	item.ID = id
	s.refreshDictionary(r)

	render.Status(r, http.StatusCreated)
	view := dto.ConvertMasterItem(item)
	render.JSON(w, r, view)
}

func (s *Server) handleUpdateMaster(w http.ResponseWriter, r *http.Request) {
	category, err := categoryParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	var req masterRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	item := s.masterFromRequest(category, &req)
	if err := s.repo.Masters().UpdateMasterItem(r.Context(), id, item); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	s.refreshDictionary(r)

	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

// handleDeactivateMaster retires the entry; existing orders keep referring
// to its code.
func (s *Server) handleDeactivateMaster(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if err := s.repo.Masters().SetMasterItemActive(r.Context(), id, false); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	s.refreshDictionary(r)

	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

func (s *Server) refreshDictionary(r *http.Request) {
	di, err := s.repo.Masters().GetDictionaryInfo(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't refresh dictionary cache",
			slog.String("err", err.Error()),
		)
		return
	}
	s.dict.Refresh(di)
}

// CLAIMS

type claimRequest struct {
	OrderID        int    `json:"orderId"`
	Description    string `json:"description"`
	ReporterName   string `json:"reporterName"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	ClaimType      string `json:"claimType"`
	Admin          bool   `json:"admin"`
	Designer       bool   `json:"designer"`
	ProductionTeam bool   `json:"productionTeam"`
	Shipper        bool   `json:"shipper"`
	PreProduction  bool   `json:"preProduction"`
}

func (s *Server) claimFromRequest(r *http.Request, req *claimRequest) (*entity.ClaimInsert, error) {
	c := &entity.ClaimInsert{
		OrderID:        req.OrderID,
		Description:    req.Description,
		ReporterName:   req.ReporterName,
		ReportedBy:     auth.UsernameFromContext(r.Context()),
		Status:         entity.ClaimStatus(req.Status),
		Priority:       entity.ClaimPriority(req.Priority),
		ClaimType:      entity.ClaimType(req.ClaimType),
		Admin:          req.Admin,
		Designer:       req.Designer,
		ProductionTeam: req.ProductionTeam,
		Shipper:        req.Shipper,
		PreProduction:  req.PreProduction,
	}
	if c.Status == "" {
		c.Status = entity.ClaimOpen
	}
	if c.Priority == "" {
		c.Priority = entity.ClaimMedium
	}
	if c.ClaimType == "" {
		c.ClaimType = entity.ClaimOtherTyp
	}
	if !entity.ValidClaimStatuses[c.Status] {
		return nil, fmt.Errorf("unknown claim status")
	}
	if !entity.ValidClaimPriorities[c.Priority] {
		return nil, fmt.Errorf("unknown claim priority")
	}
	if !entity.ValidClaimTypes[c.ClaimType] {
		return nil, fmt.Errorf("unknown claim type")
	}
	return c, nil
}

type claimResponse struct {
	dto.ClaimView
}

func (c *claimResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type claimListResponse struct {
	Claims []dto.ClaimView `json:"claims"`
	Total  int             `json:"total"`
}

func (c *claimListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleListClaims(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	status := entity.ClaimStatus(qv.Get("status"))
	if status != "" && !entity.ValidClaimStatuses[status] {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("unknown claim status")))
		return
	}
	limit, _ := strconv.Atoi(qv.Get("size"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	page, _ := strconv.Atoi(qv.Get("page"))
	if page < 1 {
		page = 1
	}

	claims, total, err := s.repo.Claims().ListClaims(r.Context(), status, limit, (page-1)*limit)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &claimListResponse{Claims: dto.ConvertClaims(claims), Total: total})
}

func (s *Server) handleListOrderClaims(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	claims, err := s.repo.Claims().ListClaimsByOrder(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &claimListResponse{Claims: dto.ConvertClaims(claims), Total: len(claims)})
}

func (s *Server) handleAddClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	c, err := s.claimFromRequest(r, &req)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	// The claim must point at a real order.
	if _, err := s.pipeline.Fetch(r.Context(), c.OrderID); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}

	id, err := s.repo.Claims().AddClaim(r.Context(), c)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	claim, err := s.repo.Claims().GetClaimById(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &claimResponse{ClaimView: dto.ConvertClaim(claim)})
}

func (s *Server) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	claim, err := s.repo.Claims().GetClaimById(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &claimResponse{ClaimView: dto.ConvertClaim(claim)})
}

func (s *Server) handleUpdateClaim(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	var req claimRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	c, err := s.claimFromRequest(r, &req)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if _, err := s.repo.Claims().GetClaimById(r.Context(), id); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	if err := s.repo.Claims().UpdateClaim(r.Context(), id, c); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	claim, err := s.repo.Claims().GetClaimById(r.Context(), id)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &claimResponse{ClaimView: dto.ConvertClaim(claim)})
}

type claimStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleSetClaimStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	var req claimStatusRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	status := entity.ClaimStatus(req.Status)
	if !entity.ValidClaimStatuses[status] {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("unknown claim status")))
		return
	}
	if err := s.repo.Claims().SetClaimStatus(r.Context(), id, status); err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

// STATISTICS

type statisticsResponse struct {
	*entity.OrderStatistics
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (sr *statisticsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	qv := r.URL.Query()
	to := time.Now()
	from := to.AddDate(0, -1, 0)
	if v := qv.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("from must be YYYY-MM-DD")))
			return
		}
		from = t
	}
	if v := qv.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("to must be YYYY-MM-DD")))
			return
		}
		// Inclusive end date.
		to = t.AddDate(0, 0, 1)
	}

	stats, err := s.repo.Statistics().GetOrderStatistics(r.Context(), from, to)
	if err != nil {
		render.Render(w, r, respond.Error(err))
		return
	}
	render.Render(w, r, &statisticsResponse{OrderStatistics: stats, From: from, To: to})
}
