package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growpod"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/ledger"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
)

// DeployRequest creates the global record
type DeployRequest struct {
	Owner string `json:"owner" validate:"required,address"`
}

// InvokeRequest submits one action call together with its group.
// Args are raw byte arguments; UintArgs is a shorthand that encodes each
// value as 8 big-endian bytes.
type InvokeRequest struct {
	Action   string            `json:"action" validate:"required,action_tag"`
	Args     [][]byte          `json:"args,omitempty" validate:"max=16,excluded_with=UintArgs"`
	UintArgs []uint64          `json:"uint_args,omitempty" validate:"max=16"`
	Ops      []domain.LedgerOp `json:"ops,omitempty" validate:"max=16"`
	// Index is the call's position in the group; nil places it after all ops
	Index *int `json:"index,omitempty" validate:"omitempty,min=0"`
}

// Bundle returns the submitted group
func (req InvokeRequest) Bundle() ledger.Bundle {
	b := ledger.NewBundle(req.Ops...)
	if req.Index != nil {
		b.Index = *req.Index
	}
	return b
}

// CallArgs returns the byte arguments of the call
func (req InvokeRequest) CallArgs() [][]byte {
	if len(req.UintArgs) > 0 {
		return growpod.Uint64Args(req.UintArgs)
	}
	return req.Args
}

// AccountListResponse is one page of accounts
type AccountListResponse struct {
	Accounts []domain.AccountState `json:"accounts"`
	Total    int64                 `json:"total"`
	// Next is the cursor for the following page, empty on the last one
	Next string `json:"next,omitempty"`
}

// GrowPodHandler serves the growpod API
type GrowPodHandler struct {
	svc growpod.Service
}

// NewGrowPodHandler creates a new growpod handler
func NewGrowPodHandler(svc growpod.Service) *GrowPodHandler {
	return &GrowPodHandler{svc: svc}
}

// addressParam reads and checks the {address} path parameter
func addressParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := chi.URLParam(r, "address")
	if !IsValidAddress(address) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidAddress)
		return "", false
	}
	return address, true
}

// HandleDeploy creates the global record
// @Summary Deploy the application
// @Description Creates the global state record owned by the given address
// @Tags growpod
// @Accept json
// @Produce json
// @Param request body DeployRequest true "Deploy request"
// @Success 201 {object} domain.GlobalConfig
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already deployed"
// @Router /api/v1/deploy [post]
func (h *GrowPodHandler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	var req DeployRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deploy"); err != nil {
		return
	}

	g, err := h.svc.Deploy(r.Context(), req.Owner)
	if err != nil {
		respondServiceError(w, r, opDeploy, err)
		return
	}
	respondJSON(w, http.StatusCreated, g)
}

// HandleGetGlobal returns the global record
// @Summary Get global state
// @Tags growpod
// @Produce json
// @Success 200 {object} domain.GlobalConfig
// @Failure 404 {object} ErrorResponse "Not deployed"
// @Router /api/v1/global [get]
func (h *GrowPodHandler) HandleGetGlobal(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGlobal(r.Context())
	if err != nil {
		respondServiceError(w, r, opGetGlobal, err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

// HandleOptIn creates the local state of an account
// @Summary Opt in an account
// @Description Allocates the initial pod slots for the account
// @Tags growpod
// @Produce json
// @Param address path string true "Account address"
// @Success 201 {object} domain.AccountState
// @Failure 404 {object} ErrorResponse "Not deployed"
// @Failure 409 {object} ErrorResponse "Already opted in"
// @Router /api/v1/accounts/{address}/optin [post]
func (h *GrowPodHandler) HandleOptIn(w http.ResponseWriter, r *http.Request) {
	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	a, err := h.svc.OptIn(r.Context(), address)
	if err != nil {
		respondServiceError(w, r, opOptIn, err)
		return
	}
	respondJSON(w, http.StatusCreated, a)
}

// HandleGetAccount returns the local state of an account
// @Summary Get account state
// @Tags growpod
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} domain.AccountState
// @Failure 404 {object} ErrorResponse "Not opted in"
// @Router /api/v1/accounts/{address} [get]
func (h *GrowPodHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	a, err := h.svc.GetAccount(r.Context(), address)
	if err != nil {
		respondServiceError(w, r, opGetAccount, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// HandleGetLayout returns the key/value view of the global and local state
// @Summary Get state layout
// @Tags growpod
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} growpod.StateLayout
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{address}/layout [get]
func (h *GrowPodHandler) HandleGetLayout(w http.ResponseWriter, r *http.Request) {
	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	l, err := h.svc.GetLayout(r.Context(), address)
	if err != nil {
		respondServiceError(w, r, opGetLayout, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// HandleListAccounts pages through opted-in accounts
// @Summary List accounts
// @Tags growpod
// @Produce json
// @Param after query string false "Return accounts after this address"
// @Param limit query int false "Page size"
// @Success 200 {object} AccountListResponse
// @Router /api/v1/accounts [get]
func (h *GrowPodHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w, growpod.DefaultListLimit)
	if !ok {
		return
	}
	after := GetOptionalQueryParam(r, "after", "")

	accounts, err := h.svc.ListAccounts(r.Context(), after, limit)
	if err != nil {
		respondServiceError(w, r, opListAccounts, err)
		return
	}
	total, err := h.svc.CountAccounts(r.Context())
	if err != nil {
		respondServiceError(w, r, opCountAccounts, err)
		return
	}

	resp := AccountListResponse{Accounts: accounts, Total: total}
	if resp.Accounts == nil {
		resp.Accounts = []domain.AccountState{}
	}
	if len(accounts) > 0 && len(accounts) >= limit {
		resp.Next = accounts[len(accounts)-1].Address
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleInvoke runs one action for the account
// @Summary Run an action
// @Description Runs an action tag such as water_1 or mint_seed with the group it was submitted in
// @Tags growpod
// @Accept json
// @Produce json
// @Param address path string true "Caller address"
// @Param request body InvokeRequest true "Action call"
// @Success 200 {object} growpod.InvokeResult
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 404 {object} ErrorResponse "Not opted in"
// @Failure 422 {object} ErrorResponse "Action rejected"
// @Failure 429 {object} ErrorResponse "Cooldown active"
// @Router /api/v1/accounts/{address}/actions [post]
func (h *GrowPodHandler) HandleInvoke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	address, ok := addressParam(w, r)
	if !ok {
		return
	}

	var req InvokeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Invoke"); err != nil {
		return
	}

	log.Info("Action request received", "address", address, "action", req.Action, "group_size", len(req.Ops)+1)

	res, err := h.svc.Invoke(r.Context(), address, req.Action, req.CallArgs(), req.Bundle())
	if err != nil {
		respondServiceError(w, r, opInvoke+req.Action, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Routes registers the growpod endpoints on r
func (h *GrowPodHandler) Routes(r chi.Router) {
	r.Post("/deploy", h.HandleDeploy)
	r.Get("/global", h.HandleGetGlobal)
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.HandleListAccounts)
		r.Route("/{address}", func(r chi.Router) {
			r.Get("/", h.HandleGetAccount)
			r.Post("/optin", h.HandleOptIn)
			r.Get("/layout", h.HandleGetLayout)
			r.Post("/actions", h.HandleInvoke)
		})
	})
}
