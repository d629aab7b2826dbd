package http

import (
	"errors"
	"net/http"

	"github.com/benharosh/studio-cms/internal/adapter"
	"github.com/benharosh/studio-cms/internal/content"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/service"
	"github.com/benharosh/studio-cms/internal/store"
	"github.com/benharosh/studio-cms/internal/view"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrWrongCredentials:         http.StatusUnauthorized,
	service.ErrTokenCreationFailed:      http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrValidationEmptyPageID:    http.StatusBadRequest,
	service.ErrValidationEmptyBlockID:   http.StatusBadRequest,
	service.ErrValidationNoContent:      http.StatusBadRequest,
	service.ErrValidationEmptyTitle:     http.StatusBadRequest,
	service.ErrValidationEmptyName:      http.StatusBadRequest,
	service.ErrValidationEmptyMessage:   http.StatusBadRequest,
	service.ErrValidationEmptyImageURL:  http.StatusBadRequest,
	service.ErrValidationNoContactWay:   http.StatusBadRequest,
	service.ErrValidationEmptySlug:      http.StatusBadRequest,
	service.ErrValidationEmptyID:        http.StatusBadRequest,
	service.ErrValidationBadLanguage:    http.StatusBadRequest,
	service.ErrValidationBadBlockArray:  http.StatusBadRequest,
	service.ErrValidationBadDesignValue: http.StatusBadRequest,

	adapter.ErrMediaUnreachable: http.StatusBadRequest,
	adapter.ErrNotAnImage:       http.StatusBadRequest,

	content.ErrBlockNotFound:    http.StatusNotFound,
	content.ErrEmptyBlockID:     http.StatusBadRequest,
	content.ErrDuplicateBlockID: http.StatusBadRequest,

	view.ErrUnknownPage: http.StatusNotFound,

	store.ErrPageNotFound:          http.StatusNotFound,
	store.ErrPageNotSaved:          http.StatusInternalServerError,
	store.ErrProjectNotFound:       http.StatusNotFound,
	store.ErrSlugAlreadyExists:     http.StatusConflict,
	store.ErrCategoryNotFound:      http.StatusNotFound,
	store.ErrCategoryAlreadyExists: http.StatusConflict,
	store.ErrSettingsNotFound:      http.StatusNotFound,
	store.ErrMessageNotFound:       http.StatusNotFound,
	store.ErrImageNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingDocument:   http.StatusInternalServerError,
	store.ErrDecodingDocument:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError logs the error and writes the mapped status. Internal errors
// are reported to the client as a bare status text so that storage details
// never leak into responses.
func respondError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	http.Error(w, err.Error(), status)
}
