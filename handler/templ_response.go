package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matched by selector instead of the one
// matched by the component's root id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component of a multi-patch response.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Templ renders component as an SSE element patch for datastar requests and
// as plain HTML otherwise.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplMulti(Patch(component, opts...))
}

// TemplStatus renders component as HTML with the given status code.
// Datastar requests get the same SSE patch as Templ; the status stays 200
// because datastar ignores bodies of non-2xx responses.
func TemplStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}, status: status}
}

// TemplMulti sends one SSE patch per component for datastar requests and
// concatenates the components for plain requests.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches, status: http.StatusOK}
}

// WithSignals adds a signal patch after the element patches of resp.
// It has no effect on plain HTML requests.
func WithSignals(resp Response, signals any) Response {
	tr, ok := resp.(templResponse)
	if !ok {
		return resp
	}
	tr.signals = append(tr.signals, signals)
	return tr
}

type templResponse struct {
	patches []TemplPatch
	signals []any
	status  int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		for _, s := range t.signals {
			if err := sse.MarshalAndPatchSignals(s); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Signals patches datastar signals without touching elements.
func Signals(signals any) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if !IsDataStar(r) {
			return JSON(signals).Render(w, r)
		}
		return datastar.NewSSE(w, r).MarshalAndPatchSignals(signals)
	})
}
