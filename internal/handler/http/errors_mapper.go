package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inbox-pilot/internal/service"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
)

// errorStatusMap binds the service and store sentinels to the HTTP status
// the API answers with. Anything not listed is an internal server error.
//
// store.ErrNoUserWasFound only ever reaches a handler from token
// resolution (login folds it into ErrInvalidCredentials first), so it maps
// to 401 rather than 404.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUserIsInactive:        http.StatusForbidden,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrTokenIsInvalid:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrSettingsNotFound:   http.StatusInternalServerError,
	store.ErrStoreUnavailable:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
