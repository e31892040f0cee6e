package http

import (
	"errors"
	"net/http"

	"github.com/rcldesign/asset-manager-sub006/internal/gateway"
	"github.com/rcldesign/asset-manager-sub006/internal/store"
	"github.com/rcldesign/asset-manager-sub006/internal/sync"
	"github.com/rcldesign/asset-manager-sub006/models"
)

var errorStatusMap = map[error]int{
	sync.ErrInvalidChange:           http.StatusBadRequest,
	sync.ErrInvalidPageToken:        http.StatusBadRequest,
	sync.ErrInvalidResolution:       http.StatusBadRequest,
	models.ErrInvalidPayload:        http.StatusBadRequest,
	models.ErrUnsupportedEntityType: http.StatusBadRequest,

	gateway.ErrPermissionDenied: http.StatusForbidden,
	gateway.ErrEntityNotFound:   http.StatusNotFound,

	store.ErrClientNotFound:          http.StatusNotFound,
	store.ErrMetadataNotFound:        http.StatusNotFound,
	store.ErrQueueItemNotFound:       http.StatusNotFound,
	store.ErrConflictNotFound:        http.StatusNotFound,
	store.ErrConflictAlreadyResolved: http.StatusConflict,
	store.ErrVersionConflict:         http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
