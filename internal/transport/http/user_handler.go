package http

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/service"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type registerUserRequest struct {
	Name string `json:"name"`
}

type updateUserRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

type userDTO struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
}

type userResponse struct {
	User userDTO `json:"user"`
}

func newUserResponse(data service.UserData) userResponse {
	return userResponse{
		User: userDTO{
			UserID:    data.ID,
			Name:      data.Name,
			IsPremium: data.IsPremium,
		},
	}
}

func (h *Handler) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, newUserResponse(service.NewUserData(user)))
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	data, err := h.userService.User(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newUserResponse(data))
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), service.UpdateUserCommand{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newUserResponse(service.NewUserData(user)))
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpgradeUser(w http.ResponseWriter, r *http.Request) {
	h.changeMembership(w, r, h.userService.Upgrade)
}

func (h *Handler) handleDowngradeUser(w http.ResponseWriter, r *http.Request) {
	h.changeMembership(w, r, h.userService.Downgrade)
}

type membershipChange func(ctx context.Context, id string) (*domain.User, error)

func (h *Handler) changeMembership(w http.ResponseWriter, r *http.Request, change membershipChange) {
	user, err := change(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newUserResponse(service.NewUserData(user)))
}
