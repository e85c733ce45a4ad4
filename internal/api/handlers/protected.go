package handlers

import (
	"fmt"
	"net/http"

	"github.com/mnyiz/lockdin/internal/identity"
	"github.com/mnyiz/lockdin/internal/utils"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// GET /protected
// Protected godoc
// @Summary Greet the authenticated caller
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} utils.ErrorPayload "Missing or invalid token"
// @Router /protected [get]
func (h *Handler) Protected(w http.ResponseWriter, r *http.Request, caller identity.Caller) {
	utils.JSONResponse(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Hello %s", caller.Email),
	})
}
