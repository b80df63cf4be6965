package http

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createClubRequest struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

type joinClubRequest struct {
	UserID string `json:"user_id"`
}

type clubDTO struct {
	ClubID  string   `json:"club_id"`
	Name    string   `json:"name"`
	OwnerID string   `json:"owner_id"`
	Members []string `json:"members"`
}

type clubResponse struct {
	Club clubDTO `json:"club"`
}

type clubRecommendationDTO struct {
	ClubID   string `json:"club_id"`
	ClubName string `json:"club_name"`
	OwnerID  string `json:"owner_id"`
}

type recommendationsResponse struct {
	Clubs []clubRecommendationDTO `json:"clubs"`
}

func newClubResponse(club *domain.Club) clubResponse {
	members := club.Members()
	memberIDs := make([]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.String()
	}

	return clubResponse{
		Club: clubDTO{
			ClubID:  club.ID().String(),
			Name:    club.Name().String(),
			OwnerID: club.OwnerID().String(),
			Members: memberIDs,
		},
	}
}

func newRecommendationsResponse(recommendations []service.ClubRecommendation) recommendationsResponse {
	clubs := make([]clubRecommendationDTO, len(recommendations))
	for i, rec := range recommendations {
		clubs[i] = clubRecommendationDTO{
			ClubID:   rec.ClubID,
			ClubName: rec.ClubName,
			OwnerID:  rec.OwnerID,
		}
	}

	return recommendationsResponse{Clubs: clubs}
}

func (h *Handler) handleCreateClub(w http.ResponseWriter, r *http.Request) {
	var req createClubRequest
	if !h.decode(w, r, &req) {
		return
	}

	club, err := h.clubService.CreateClub(r.Context(), req.UserID, req.Name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, newClubResponse(club))
}

func (h *Handler) handleJoinClub(w http.ResponseWriter, r *http.Request) {
	var req joinClubRequest
	if !h.decode(w, r, &req) {
		return
	}

	club, err := h.clubService.JoinClub(r.Context(), req.UserID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newClubResponse(club))
}

func (h *Handler) handleRecommendClubs(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.clubService.Recommendations(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newRecommendationsResponse(recommendations))
}
