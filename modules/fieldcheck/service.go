package fieldcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldcheck/handler"
	"github.com/dmitrymomot/fieldcheck/pkg/binder"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/livecheck"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/fieldcheck/pkg/sanitizer"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// DefaultTitle is the heading of the default page.
const DefaultTitle = "Alta de cliente"

// Service serves the customer form and checks its fields as the user types.
// Nothing submitted is stored.
type Service struct {
	schema       Schema
	fields       []FormField
	delay        time.Duration
	basePath     string
	title        string
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
	limiter      ratelimiter.RateLimiter
	limitKey     ratelimiter.KeyFunc
}

type Option func(*Service)

// WithViews replaces the default components. It panics when a component is missing.
func WithViews(v *Views) Option {
	v.validate()
	return func(s *Service) {
		s.views = v
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		s.errorHandler = h
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBasePath sets the prefix the service is mounted under, used to build
// action URLs in the rendered form.
func WithBasePath(p string) Option {
	return func(s *Service) {
		s.basePath = strings.TrimSuffix(p, "/")
	}
}

func WithTitle(title string) Option {
	return func(s *Service) {
		s.title = title
	}
}

// WithRateLimiter limits live checks per key, typically the client address.
// Submissions are not limited.
func WithRateLimiter(limiter ratelimiter.RateLimiter, key ratelimiter.KeyFunc) Option {
	if limiter == nil || key == nil {
		panic("fieldcheck: rate limiter and key func are required")
	}
	return func(s *Service) {
		s.limiter = limiter
		s.limitKey = ratelimiter.Composite(ratelimiter.Static("validate"), key)
	}
}

// WithFields reorders, relabels or drops fields of the customer form.
// Ids outside the Field* constants are never submitted.
func WithFields(fields ...FormField) Option {
	return func(s *Service) {
		s.fields = fields
	}
}

// NewService builds the service from the engine config: the debounce delay
// goes into the rendered input actions and the id sets decide which fields
// are live-checked.
func NewService(cfg livecheck.Config, opts ...Option) *Service {
	s := &Service{
		delay:  livecheck.DefaultDelay,
		title:  DefaultTitle,
		views:  DefaultViews(),
		logger: slog.Default(),
	}
	if cfg.Debounce > 0 {
		s.delay = cfg.Debounce
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(logger.Component("fieldcheck"))
	s.schema = NewSchema(cfg.Classifier(), s.fields...)
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
			ErrorPage:   s.views.ErrorPage,
			ErrorToast:  s.views.ErrorToast,
			ToastTarget: "#" + ToastContainerID,
		})
	}
	return s
}

// Schema returns the classified form fields.
func (s *Service) Schema() Schema {
	return s.schema
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	var limits []func(http.Handler) http.Handler
	if s.limiter != nil {
		limits = append(limits, ratelimiter.Middleware(s.limiter, s.limitKey, ratelimiter.WithResponder(s.rateLimited)))
	}

	r.With(limits...).Post("/validate/{field}", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](
			binder.Path(chi.URLParam),
		),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	// Plain form posts and datastar signals (JSON) share one endpoint.
	r.Post("/submit", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](
			binder.Form(),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
	))

	r.Get("/health/live", httpserver.HealthCheckHandler(s.logger))

	return r
}

// rateLimited answers denied checks through the error handler, so datastar
// clients get a toast instead of a silent 429.
func (s *Service) rateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
	ctx := handler.NewContext(w, r)
	if err != nil {
		s.errorHandler(ctx, handler.ErrInternal.Wrap(err))
		return
	}
	s.errorHandler(ctx, handler.ErrTooManyRequests)
}

func (s *Service) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(PageParams{
		Title: s.title,
		Form:  s.formParams(nil, nil),
	}))
}

// ValidateRequest names the field to check; its value comes from the signals.
type ValidateRequest struct {
	Field string `path:"field"`
}

// ValidateResponse is the JSON answer for API clients.
type ValidateResponse struct {
	Field    string `json:"field"`
	Kind     string `json:"kind"`
	Validity string `json:"validity"`
	field.Result
}

// checkSignals mirrors the per-field validity into the client. The leading
// underscore keeps the signal local to the browser.
type checkSignals struct {
	Checks map[string]string `json:"_checks"`
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	f, ok := s.schema.Lookup(req.Field)
	if !ok || !f.Tracked {
		return handler.Error(handler.ErrNotFound)
	}

	r := ctx.Request()
	signals := map[string]any{}
	if err := handler.ReadSignals(r, &signals); err != nil {
		return handler.Error(err)
	}

	raw := signalString(signals[f.ID])
	res := field.Validate(f.Kind, raw)
	validity := livecheck.ValidityOf(res)
	s.logEvaluation(ctx, f, field.Normalize(f.Kind, raw), res)

	if handler.WantsJSON(r) {
		return handler.JSON(ValidateResponse{
			Field:    f.ID,
			Kind:     f.Kind.String(),
			Validity: validity.String(),
			Result:   res,
		})
	}

	feedback := s.views.Feedback(FeedbackParams{
		FieldID: f.ID,
		Message: res.Message,
		Visible: !res.Valid,
	})
	return handler.WithSignals(handler.Templ(feedback), checkSignals{
		Checks: map[string]string{f.ID: validity.String()},
	})
}

// SubmitResponse carries the normalised values of an accepted submission.
type SubmitResponse struct {
	Values map[string]string `json:"values"`
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	r := ctx.Request()
	values := req.Values()

	normalized, err := s.schema.Check(values)
	if err != nil {
		verrs := validator.ExtractValidationErrors(err)
		s.logger.InfoContext(ctx, "submission rejected",
			slog.Any("fields", verrs.Fields()),
			logger.Event("submit_blocked"),
		)

		switch {
		case handler.IsDataStar(r):
			return s.rejection(values, verrs)
		case handler.WantsJSON(r):
			return handler.JSONError(err)
		default:
			return handler.TemplStatus(http.StatusUnprocessableEntity, s.views.Page(PageParams{
				Title: s.title,
				Form:  s.formParams(values, verrs),
			}))
		}
	}

	s.logger.InfoContext(ctx, "submission accepted",
		logger.Masked(FieldPhone, sanitizer.MaskPhone(normalized[FieldPhone])),
		logger.Masked(FieldNationalID, sanitizer.MaskNationalID(normalized[FieldNationalID])),
		logger.Event("submit_accepted"),
	)

	if handler.WantsJSON(r) {
		return handler.JSON(SubmitResponse{Values: normalized})
	}

	submitted := make([]SubmittedValue, 0, len(s.schema))
	for _, f := range s.schema {
		if v := normalized[f.ID]; v != "" {
			submitted = append(submitted, SubmittedValue{Label: f.Label, Value: v})
		}
	}
	return handler.Templ(s.views.Success(SuccessParams{Values: submitted}))
}

// rejection patches the message element of every field and resets the
// validity signals, so stale messages from earlier checks disappear.
func (s *Service) rejection(values map[string]string, verrs validator.ValidationErrors) handler.Response {
	results := s.results(values, verrs)
	patches := make([]handler.TemplPatch, 0, len(s.schema))
	checks := make(map[string]string, len(s.schema))

	for _, f := range s.schema {
		fb := FeedbackParams{FieldID: f.ID}
		if res, ok := results[f.ID]; ok && !res.Valid {
			fb.Message, fb.Visible = res.Message, true
		}
		patches = append(patches, handler.Patch(s.views.Feedback(fb)))

		if f.Tracked {
			validity := livecheck.Untouched
			if res, ok := results[f.ID]; ok {
				validity = livecheck.ValidityOf(*res)
			}
			checks[f.ID] = validity.String()
		}
	}

	return handler.WithSignals(handler.TemplMulti(patches...), checkSignals{Checks: checks})
}

// results turns submission errors back into per-field verdicts. Fields without
// an error get a result only when they hold a value.
func (s *Service) results(values map[string]string, verrs validator.ValidationErrors) map[string]*field.Result {
	out := make(map[string]*field.Result, len(s.schema))
	for _, f := range s.schema {
		switch {
		case verrs.Has(f.ID):
			out[f.ID] = &field.Result{Valid: false, Message: verrs.Get(f.ID)[0]}
		case sanitizer.Trim(values[f.ID]) != "":
			out[f.ID] = &field.Result{Valid: true}
		}
	}
	return out
}

func (s *Service) formParams(values map[string]string, verrs validator.ValidationErrors) FormParams {
	var results map[string]*field.Result
	if values != nil {
		results = s.results(values, verrs)
	}

	signals := make(map[string]any, len(s.schema)+1)
	checks := make(map[string]string)
	fields := make([]FieldParams, 0, len(s.schema))

	for _, f := range s.schema {
		value := values[f.ID]
		signals[f.ID] = value

		fp := FieldParams{
			Field:       f,
			Value:       value,
			Result:      results[f.ID],
			ValidateURL: s.basePath + "/validate/" + f.ID,
			Delay:       s.delay,
		}
		fields = append(fields, fp)

		if f.Tracked {
			validity := livecheck.Untouched
			if fp.Result != nil {
				validity = livecheck.ValidityOf(*fp.Result)
			}
			checks[f.ID] = validity.String()
		}
	}
	signals["_checks"] = checks

	raw, err := json.Marshal(signals)
	if err != nil {
		panic(fmt.Sprintf("fieldcheck: marshal form signals: %v", err))
	}

	return FormParams{
		SubmitURL: s.basePath + "/submit",
		Signals:   string(raw),
		Fields:    fields,
	}
}

// logEvaluation never logs e-mail addresses or plates; phone numbers and
// identity numbers are masked.
func (s *Service) logEvaluation(ctx context.Context, f FormField, normalized string, res field.Result) {
	attrs := []slog.Attr{
		logger.FieldID(f.ID),
		logger.FieldKind(f.Kind.String()),
		slog.Bool("valid", res.Valid),
		slog.Bool("skipped", res.Skipped),
	}
	switch f.Kind {
	case field.KindPhone:
		attrs = append(attrs, logger.Masked("value", sanitizer.MaskPhone(normalized)))
	case field.KindNationalID:
		attrs = append(attrs, logger.Masked("value", sanitizer.MaskNationalID(normalized)))
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "field validated", attrs...)
}

func signalString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
