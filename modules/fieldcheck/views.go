package fieldcheck

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fieldcheck/handler"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/livecheck"
)

// FormID is the id of the form element; the success view replaces it.
const FormID = "customer-form"

// ToastContainerID receives error toasts for datastar requests.
const ToastContainerID = "toast-container"

// DatastarScript is the client bundle the default page loads.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// Views renders the HTML of the service. Every function must be set;
// DefaultViews provides a complete set.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	Field      func(FieldParams) templ.Component
	Feedback   func(FeedbackParams) templ.Component
	Success    func(SuccessParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// PageParams contains data for rendering the full page.
type PageParams struct {
	Title string
	Form  FormParams
}

// FormParams contains data for rendering the form.
type FormParams struct {
	SubmitURL string
	Signals   string // JSON object for data-signals
	Fields    []FieldParams
}

// FieldParams contains data for rendering one labelled input.
type FieldParams struct {
	Field       FormField
	Value       string
	Result      *field.Result // nil before the first check
	ValidateURL string
	Delay       time.Duration
}

// FeedbackParams contains data for rendering the message element of a field.
type FeedbackParams struct {
	FieldID string
	Message string
	Visible bool
}

// SuccessParams contains data for rendering an accepted submission.
type SuccessParams struct {
	Values []SubmittedValue
}

type SubmittedValue struct {
	Label string
	Value string
}

// FeedbackID is the id of the message element that belongs to a field.
func FeedbackID(fieldID string) string {
	return fieldID + "-" + livecheck.ClassError
}

// DefaultViews returns plain-HTML views wired for datastar.
func DefaultViews() *Views {
	v := &Views{
		Feedback:   feedbackView,
		Success:    successView,
		ErrorPage:  errorPageView,
		ErrorToast: errorToastView,
	}
	v.Field = func(p FieldParams) templ.Component {
		return fieldView(p, v.Feedback)
	}
	v.Form = func(p FormParams) templ.Component {
		return formView(p, v.Field)
	}
	v.Page = func(p PageParams) templ.Component {
		return pageView(p, v.Form)
	}
	return v
}

func (v *Views) validate() {
	if v == nil || v.Page == nil || v.Form == nil || v.Field == nil || v.Feedback == nil ||
		v.Success == nil || v.ErrorPage == nil || v.ErrorToast == nil {
		panic("fieldcheck: views must define every component")
	}
}

const pageStyle = `.form-group{margin-bottom:1rem}` +
	`input.error{border-color:#c0392b}input.success{border-color:#27ae60}` +
	`.field-error{color:#c0392b;font-size:.875rem}` +
	`.toast{padding:.5rem 1rem;margin-bottom:.5rem;border-radius:4px}` +
	`.toast-error{background:#fdecea}.toast-warning{background:#fff4e5}`

func pageView(p PageParams, form func(FormParams) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s</title>`, templ.EscapeString(p.Title))
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, DatastarScript)
		fmt.Fprintf(&b, `<style>%s</style></head><body>`, pageStyle)
		fmt.Fprintf(&b, `<div id="%s"></div><h1>%s</h1>`, ToastContainerID, templ.EscapeString(p.Title))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := form(p.Form).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func formView(p FormParams, renderField func(FieldParams) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		url := templ.EscapeString(p.SubmitURL)
		_, err := fmt.Fprintf(w,
			`<form id="%s" method="post" action="%s" novalidate data-signals="%s" data-on-submit="@post('%s')">`,
			FormID, url, templ.EscapeString(p.Signals), url)
		if err != nil {
			return err
		}
		for _, fp := range p.Fields {
			if err := renderField(fp).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `<button type="submit">Enviar</button></form>`)
		return err
	})
}

func fieldView(p FieldParams, feedback func(FeedbackParams) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		f := p.Field
		id := templ.EscapeString(f.ID)

		var b strings.Builder
		fmt.Fprintf(&b, `<div class="form-group"><label for="%s">%s</label>`, id, templ.EscapeString(f.Label))
		fmt.Fprintf(&b, `<input id="%s" name="%s" type="%s" value="%s" data-bind-%s`,
			id, id, templ.EscapeString(f.Type), templ.EscapeString(p.Value), id)
		if f.Placeholder != "" {
			fmt.Fprintf(&b, ` placeholder="%s"`, templ.EscapeString(f.Placeholder))
		}
		if f.Required {
			b.WriteString(` required`)
		}
		if class := resultClass(p.Result); class != "" {
			fmt.Fprintf(&b, ` class="%s"`, class)
		}
		if f.Tracked {
			action := templ.EscapeString(fmt.Sprintf("@post('%s')", p.ValidateURL))
			fmt.Fprintf(&b, ` data-on-input__debounce.%dms="%s" data-on-blur="%s"`, p.Delay.Milliseconds(), action, action)
			fmt.Fprintf(&b, ` data-class-%s="$_checks.%s == '%s'"`, livecheck.ClassError, id, livecheck.Invalid)
			fmt.Fprintf(&b, ` data-class-%s="$_checks.%s == '%s'"`, livecheck.ClassSuccess, id, livecheck.Valid)
		}
		b.WriteString(`>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		fb := FeedbackParams{FieldID: f.ID}
		if p.Result != nil && !p.Result.Valid {
			fb.Message, fb.Visible = p.Result.Message, true
		}
		if err := feedback(fb).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func resultClass(res *field.Result) string {
	switch {
	case res == nil || res.Skipped:
		return ""
	case res.Valid:
		return livecheck.ClassSuccess
	default:
		return livecheck.ClassError
	}
}

func feedbackView(p FeedbackParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		style := ""
		if !p.Visible {
			style = ` style="display:none"`
		}
		_, err := fmt.Fprintf(w, `<div id="%s" class="%s" role="alert"%s>%s</div>`,
			templ.EscapeString(FeedbackID(p.FieldID)), livecheck.ClassFieldError, style, templ.EscapeString(p.Message))
		return err
	})
}

func successView(p SuccessParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" class="%s"><p>Datos recibidos.</p><dl>`, FormID, livecheck.ClassSuccess)
		for _, v := range p.Values {
			fmt.Fprintf(&b, `<dt>%s</dt><dd>%s</dd>`, templ.EscapeString(v.Label), templ.EscapeString(v.Value))
		}
		b.WriteString(`</dl></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func errorPageView(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8"><title>%d</title></head>`+
				`<body><h1>%d</h1><p>%s</p><p><small>%s</small></p><a href="%s">Volver</a></body></html>`,
			p.StatusCode, p.StatusCode, templ.EscapeString(p.Error),
			templ.EscapeString(p.RequestID), templ.EscapeString(p.RetryURL))
		return err
	})
}

func errorToastView(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" role="alert">%s</div>`,
			templ.EscapeString(p.Type), templ.EscapeString(p.Message))
		return err
	})
}
