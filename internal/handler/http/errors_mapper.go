package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crypto-catalog/internal/app"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/store"
)

type errorStatus struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{ErrInvalidRequestBody, errorStatus{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrUnknownCategory, errorStatus{http.StatusNotFound, app.MsgUnknownCategory}},
	{service.ErrUnknownOperation, errorStatus{http.StatusNotFound, app.MsgUnknownOperation}},
	{store.ErrEntryNotFound, errorStatus{http.StatusNotFound, app.MsgUnknownOperation}},
	{service.ErrInvalidOperationInput, errorStatus{http.StatusBadRequest, app.MsgInvalidDataProvided}},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)
	http.Error(w, message, status)
}
