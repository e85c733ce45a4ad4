package handlers

import (
	"errors"
	"net/http"

	"github.com/mnyiz/lockdin/internal/friends"
	"github.com/mnyiz/lockdin/internal/identity"
	"github.com/mnyiz/lockdin/internal/models"
	"github.com/mnyiz/lockdin/internal/utils"
)

type FriendRequestInput struct {
	Username string `json:"username"`
}

type FriendRequestResponse struct {
	Message string         `json:"message"`
	Friends *models.Friend `json:"friends"`
}

// POST /friends/request
// RequestFriend godoc
// @Summary Send a friend request
// @Description Creates a pending relationship from the caller to the named user unless the two are already related in either direction.
// @Tags Friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FriendRequestInput true "Target username"
// @Success 200 {object} FriendRequestResponse
// @Failure 400 {object} utils.ErrorPayload "Request to self"
// @Failure 401 {object} utils.ErrorPayload "Missing or invalid token"
// @Failure 404 {object} utils.ErrorPayload "User not found"
// @Failure 409 {object} utils.ErrorPayload "Already related"
// @Failure 500 {object} utils.ErrorPayload "Storage failure"
// @Router /friends/request [post]
func (h *Handler) RequestFriend(w http.ResponseWriter, r *http.Request, caller identity.Caller) {
	var input FriendRequestInput
	if err := decode(r, &input); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	h.log.InfoContext(r.Context(), "friend request", "from", caller.ID, "to", input.Username)

	res, err := h.friends.Request(r.Context(), caller.ID, input.Username)
	if err != nil {
		status, message := friendError(err)
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "friend request failed", "from", caller.ID, "err", err)
		}
		utils.ErrorResponse(w, status, message)
		return
	}

	utils.JSONResponse(w, http.StatusOK, FriendRequestResponse{
		Message: res.Message,
		Friends: res.Friend,
	})
}

func friendError(err error) (int, string) {
	var storageErr *friends.StorageError
	switch {
	case errors.Is(err, friends.ErrNotFound):
		return http.StatusNotFound, "User not found."
	case errors.Is(err, friends.ErrSelfReference):
		return http.StatusBadRequest, "The ID is yourself!"
	case errors.Is(err, friends.ErrConflict):
		return http.StatusConflict, "Already Friends"
	case errors.As(err, &storageErr):
		return http.StatusInternalServerError, storageErr.Error()
	}
	return http.StatusInternalServerError, err.Error()
}
