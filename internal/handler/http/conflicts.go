package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
	"github.com/rcldesign/asset-manager-sub006/models"
)

func (h *Handler) getUnresolvedConflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query, err := conflictQueryFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUnresolvedConflicts").Msg("invalid conflict query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.engine.GetUnresolvedConflicts(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUnresolvedConflicts").Msg("error listing conflicts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) resolveConflict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	conflictID := chi.URLParam(r, "conflictID")
	if conflictID == "" {
		http.Error(w, "conflict ID is required", http.StatusBadRequest)
		return
	}

	var resolveRequest models.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&resolveRequest); err != nil {
		log.Err(err).Str("func", "*Handler.resolveConflict").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.engine.ResolveConflict(ctx, conflictID, resolveRequest.Resolution, userID); err != nil {
		log.Err(err).Str("func", "*Handler.resolveConflict").Msg("error resolving conflict")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func conflictQueryFromRequest(r *http.Request) (models.ConflictQuery, error) {
	var query models.ConflictQuery
	params := r.URL.Query()

	if rawType := params.Get("entityType"); rawType != "" {
		entityType := models.EntityType(rawType)
		if !entityType.Valid() {
			return models.ConflictQuery{}, models.ErrUnsupportedEntityType
		}
		query.EntityType = &entityType
	}

	if rawPage := params.Get("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			return models.ConflictQuery{}, err
		}
		query.Page = page
	}

	if rawLimit := params.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return models.ConflictQuery{}, err
		}
		query.Limit = limit
	}

	return query, nil
}
