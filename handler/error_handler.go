package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

// ErrorPageParams is passed to the full-page error component.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast component used for datastar requests.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

type ErrorHandlerConfig struct {
	// ErrorPage renders plain HTML requests. Nil falls back to http.Error.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders datastar requests. Nil leaves the page untouched.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
}

// NewErrorHandler returns an ErrorHandler that logs err with the request id
// and answers in the shape the client expects: the JSON error envelope for
// JSON clients, a toast patch for datastar, an error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		detail, status := ErrorToDetail(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			logger.HTTPStatus(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var resp Response
		switch {
		case WantsJSON(r):
			resp = JSONError(err, WithJSONMeta(map[string]any{"request_id": reqID}))
		case IsDataStar(r):
			if cfg.ErrorToast == nil {
				return
			}
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   detail.Message,
				Type:      toastType(status),
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend))
		case cfg.ErrorPage != nil:
			resp = TemplStatus(status, cfg.ErrorPage(ErrorPageParams{
				Error:      detail.Message,
				StatusCode: status,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			}))
		default:
			http.Error(w, detail.Message, status)
			return
		}

		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}

// WantsJSON reports whether a non-datastar client asked for or sent JSON.
func WantsJSON(r *http.Request) bool {
	if IsDataStar(r) {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func toastType(status int) string {
	if status >= http.StatusInternalServerError {
		return "error"
	}
	return "warning"
}
