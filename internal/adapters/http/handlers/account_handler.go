package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// AccountHandler handles HTTP requests for account registration.
type AccountHandler struct {
	svc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler with the given service port.
func NewAccountHandler(svc ports.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// CreateAccount handles POST /api/accounts.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	res := h.svc.CreateAccount(r.Context(), req.ToCommand())
	writeResult(w, r, res, dto.ToAccountResponse)
}
