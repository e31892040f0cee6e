package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rcldesign/asset-manager-sub006/internal/logger"
	"github.com/rcldesign/asset-manager-sub006/internal/utils"
	"github.com/rcldesign/asset-manager-sub006/models"
)

// userIDFromRequest extracts the authenticated user's ID placed into the
// context by the auth middleware. When it is missing the request is answered
// with 401 and the second return value is false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *Handler) processSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.processSync").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.engine.ProcessSync(ctx, userID, syncRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.processSync").Msg("error processing sync session")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) registerClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var registerRequest models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registerRequest); err != nil {
		log.Err(err).Str("func", "*Handler.registerClient").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	client, err := h.engine.RegisterClient(ctx, userID, registerRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerClient").Msg("error registering sync client")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

// getDeltaChanges serves one page of the delta feed. The device is identified
// by the deviceId query parameter; the window and page are controlled by the
// optional since, entityTypes, pageSize and pageToken parameters.
func (h *Handler) getDeltaChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		http.Error(w, "deviceId query parameter is required", http.StatusBadRequest)
		return
	}

	query, err := deltaQueryFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeltaChanges").Msg("invalid delta query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.engine.DeltaForDevice(ctx, userID, deviceID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeltaChanges").Msg("error computing delta changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) retryFailedSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		http.Error(w, "deviceId query parameter is required", http.StatusBadRequest)
		return
	}

	report, err := h.engine.RetryFailedSync(ctx, userID, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.retryFailedSync").Msg("error retrying failed sync items")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		http.Error(w, "deviceId query parameter is required", http.StatusBadRequest)
		return
	}

	status, err := h.engine.Status(ctx, userID, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Msg("error getting sync status")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// deltaQueryFromRequest parses the delta feed query parameters. Unknown
// entity types and malformed timestamps are rejected here so the engine only
// ever sees well-formed queries.
func deltaQueryFromRequest(r *http.Request) (models.DeltaQuery, error) {
	var query models.DeltaQuery
	params := r.URL.Query()

	if rawSince := params.Get("since"); rawSince != "" {
		since, err := time.Parse(time.RFC3339, rawSince)
		if err != nil {
			return models.DeltaQuery{}, err
		}
		query.Since = &since
	}

	if rawTypes := params.Get("entityTypes"); rawTypes != "" {
		for _, rawType := range strings.Split(rawTypes, ",") {
			entityType := models.EntityType(strings.TrimSpace(rawType))
			if !entityType.Valid() {
				return models.DeltaQuery{}, models.ErrUnsupportedEntityType
			}
			query.EntityTypes = append(query.EntityTypes, entityType)
		}
	}

	if rawPageSize := params.Get("pageSize"); rawPageSize != "" {
		pageSize, err := strconv.Atoi(rawPageSize)
		if err != nil {
			return models.DeltaQuery{}, err
		}
		query.PageSize = pageSize
	}

	query.PageToken = params.Get("pageToken")

	return query, nil
}
