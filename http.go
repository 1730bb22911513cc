package rdispatch

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rdispatch/consts"
	"github.com/rohanthewiz/rdispatch/core/rtr"
)

// httpHandler serves dispatches over HTTP.
type httpHandler struct {
	dispatcher *Dispatcher
}

// NewHTTPHandler returns a handler dispatching the request path.
// Action output is buffered so failures can still set the status:
// unknown routes, controllers and actions are 404, other errors 500.
func NewHTTPHandler(d *Dispatcher) http.Handler {
	return &httpHandler{dispatcher: d}
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body bytes.Buffer

	err := h.dispatcher.DispatchTo(r.Context(), r.URL.Path, &body)
	if err != nil {
		status := statusFor(err)
		if status == consts.StatusInternalServerError {
			logger.LogErr(err, "Action failed", "path", r.URL.Path)
			http.Error(w, http.StatusText(status), status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	if w.Header().Get(consts.HeaderContentType) == "" {
		w.Header().Set(consts.HeaderContentType, http.DetectContentType(body.Bytes()))
	}
	w.WriteHeader(consts.StatusOK)
	_, _ = w.Write(body.Bytes())
}

// statusFor maps a dispatch error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rtr.ErrNoRouteMatches),
		errors.Is(err, ErrControllerNotFound),
		errors.Is(err, ErrActionNotFound):
		return consts.StatusNotFound
	default:
		return consts.StatusInternalServerError
	}
}
