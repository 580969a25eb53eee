// Package httpapi exposes the usecase services over a JSON REST API.
// It contains no business logic: handlers decode requests, delegate to
// the services and map domain errors onto HTTP status codes.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jpereira/stockfolio-backend/internal/domain"
	"github.com/jpereira/stockfolio-backend/internal/usecase/account"
	"github.com/jpereira/stockfolio-backend/internal/usecase/holding"
	"github.com/jpereira/stockfolio-backend/internal/usecase/stock"
	"github.com/jpereira/stockfolio-backend/internal/usecase/user"
	"go.uber.org/zap"
)

// Server routes HTTP requests to the usecase services
type Server struct {
	Users    *user.Service
	Accounts *account.Service
	Stocks   *stock.Service
	Holdings *holding.Service

	logger  *zap.Logger
	mux     *http.ServeMux
	handler http.Handler
}

// NewServer creates a new HTTP server instance
func NewServer(
	users *user.Service,
	accounts *account.Service,
	stocks *stock.Service,
	holdings *holding.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		Users:    users,
		Accounts: accounts,
		Stocks:   stocks,
		Holdings: holdings,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	s.routes()
	s.handler = requestLogger(logger, s.mux)
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/users", s.handleCreateUser)
	s.mux.HandleFunc("GET /v1/users/{userId}", s.handleGetUser)
	s.mux.HandleFunc("POST /v1/users/{userId}/accounts", s.handleCreateAccount)
	s.mux.HandleFunc("GET /v1/users/{userId}/accounts", s.handleListAccounts)

	s.mux.HandleFunc("POST /v1/stocks", s.handleCreateStock)
	s.mux.HandleFunc("GET /v1/stocks", s.handleListStocks)

	s.mux.HandleFunc("POST /v1/accounts/{accountId}/stocks", s.handleAssociateStock)
	s.mux.HandleFunc("GET /v1/accounts/{accountId}/stocks", s.handleValuateAccount)
	s.mux.HandleFunc("DELETE /v1/accounts/{accountId}/stocks/{symbol}", s.handleRemoveStock)
}

// ServeHTTP implements http.Handler with request logging applied
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.Users.Create(r.Context(), user.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		UserID:   u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := s.Users.GetByID(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		UserID:   u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	})
}

type createAccountRequest struct {
	Description string `json:"description"`
	Street      string `json:"street"`
	Number      int    `json:"number"`
}

type accountResponse struct {
	AccountID   string `json:"accountId"`
	Description string `json:"description"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := s.Accounts.Create(r.Context(), account.CreateAccountInput{
		UserID:      userID,
		Description: req.Description,
		Street:      req.Street,
		Number:      req.Number,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, accountResponse{
		AccountID:   a.ID.String(),
		Description: a.Description,
	})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	accounts, err := s.Accounts.ListByUser(r.Context(), userID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountResponse{
			AccountID:   a.ID.String(),
			Description: a.Description,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createStockRequest struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

type stockResponse struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

func (s *Server) handleCreateStock(w http.ResponseWriter, r *http.Request) {
	var req createStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := s.Stocks.Create(r.Context(), stock.CreateStockInput{
		Symbol:      req.Symbol,
		Description: req.Description,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, stockResponse{
		Symbol:      st.Symbol,
		Description: st.Description,
	})
}

func (s *Server) handleListStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := s.Stocks.List(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	out := make([]stockResponse, 0, len(stocks))
	for _, st := range stocks {
		out = append(out, stockResponse{Symbol: st.Symbol, Description: st.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

type associateStockRequest struct {
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
}

// valuationLineResponse serializes the total as a JSON number carrying the
// provider's floating-point precision.
type valuationLineResponse struct {
	Symbol   string  `json:"symbol"`
	Quantity int64   `json:"quantity"`
	Total    float64 `json:"total"`
}

func (s *Server) handleAssociateStock(w http.ResponseWriter, r *http.Request) {
	var req associateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.Holdings.Associate(r.Context(), r.PathValue("accountId"), req.Symbol, req.Quantity)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleValuateAccount(w http.ResponseWriter, r *http.Request) {
	lines, err := s.Holdings.Valuate(r.Context(), r.PathValue("accountId"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	out := make([]valuationLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, valuationLineResponse{
			Symbol:   line.Symbol,
			Quantity: line.Quantity,
			Total:    line.Total.InexactFloat64(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRemoveStock(w http.ResponseWriter, r *http.Request) {
	err := s.Holdings.Remove(r.Context(), r.PathValue("accountId"), r.PathValue("symbol"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeDomainError maps the domain error taxonomy onto HTTP status codes:
// the NotFound sentinels become 404, validation failures 400, a failed
// quote lookup 502 (the upstream provider is at fault), everything else 500.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var quoteErr *domain.QuoteUnavailableError
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrStockNotFound),
		errors.Is(err, domain.ErrHoldingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &quoteErr):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
