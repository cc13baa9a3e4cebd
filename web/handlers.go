/* handlers.go
 * HTTP handlers for the bracket challenge API: prediction submission and
 * reads, the leaderboard, stored results, and the sync trigger. Session
 * issuance happens upstream; handlers take the owner id the proxy forwards
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"cfp-bracket/api/shared"

	"github.com/go-chi/chi/v5"
)

// SubmitPrediction handles POST /predictions: validates and freezes a
// completed bracket under a display name unique to the owner
func (s *Server) SubmitPrediction(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := shared.User{UserId: req.OwnerId, Username: req.OwnerLabel}
	id, err := s.api.SubmitPrediction(user, req.Name, req.Picks, req.PredictedScore)
	if err != nil {
		s.writeApiError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"predictionId": id})
}

// ListPredictions handles GET /predictions?owner=<id>
func (s *Server) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ownerId := r.URL.Query().Get("owner")
	if ownerId == "" {
		writeError(w, http.StatusBadRequest, "owner query parameter is required")
		return
	}

	predictions, err := s.api.PredictionsForOwner(ownerId)
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"predictions": predictions})
}

// GetPrediction handles GET /predictions/{id}
func (s *Server) GetPrediction(w http.ResponseWriter, r *http.Request) {
	prediction, err := s.api.GetPrediction(chi.URLParam(r, "id"))
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"prediction": prediction})
}

// DeletePrediction handles DELETE /predictions/{id}?owner=<id>, scoped to
// the owner so users cannot delete each other's brackets
func (s *Server) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	ownerId := r.URL.Query().Get("owner")
	if ownerId == "" {
		writeError(w, http.StatusBadRequest, "owner query parameter is required")
		return
	}

	err := s.api.DeletePrediction(chi.URLParam(r, "id"), shared.User{UserId: ownerId})
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PredictionReport handles GET /predictions/{id}/report: the per pick
// breakdown of a prediction against current results
func (s *Server) PredictionReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.api.CheckPrediction(chi.URLParam(r, "id"))
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"report": report})
}

// PredictionNames handles GET /predictions/names
func (s *Server) PredictionNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.api.PredictionNames()
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"names": names})
}

// Leaderboard handles GET /leaderboard?page=&limit=
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	board, err := s.api.Leaderboard(page, limit)
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// Results handles GET /results
func (s *Server) Results(w http.ResponseWriter, r *http.Request) {
	results, err := s.api.Results()
	if err != nil {
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// Sync handles POST /sync: the trigger surface for the reconciliation job.
// When a sync secret is configured the caller must present it as a bearer
// token; runs are serialized by the single scheduler goroutine or the
// operator, not here
func (s *Server) Sync(w http.ResponseWriter, r *http.Request) {
	if s.syncSecret != "" && r.Header.Get("Authorization") != "Bearer "+s.syncSecret {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := s.api.Sync(r.Context())
	if err != nil {
		log.Printf("sync trigger failed: %v", err)
		s.writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// writeApiError maps the error taxonomy onto HTTP status codes
func (s *Server) writeApiError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrInvalidMatchup):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrUpstreamFetch):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("failed to encode response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
