package livecheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/dom"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/livecheck"
)

func TestDOMReporter(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	input := doc.CreateElement("input").SetAttr("id", "nif")
	doc.Body().AppendChild(doc.CreateElement("div")).AppendChild(input)

	r := livecheck.DOMReporter{}

	r.Report(input, field.Result{Valid: false, Message: "invalid national ID"})
	assert.Equal(t, []string{livecheck.ClassError}, input.Classes())
	msg := input.Parent().Find(dom.ByClass(livecheck.ClassFieldError))
	require.NotNil(t, msg)
	assert.Equal(t, "div", msg.Tag())
	assert.Equal(t, "invalid national ID", msg.Text())
	assert.False(t, msg.Hidden())

	r.Report(input, field.Result{Valid: true})
	assert.Equal(t, []string{livecheck.ClassSuccess}, input.Classes())
	assert.True(t, msg.Hidden())

	r.Report(input, field.Result{Valid: false, Message: "again"})
	assert.Len(t, input.Parent().FindAll(dom.ByClass(livecheck.ClassFieldError)), 1)
	assert.Equal(t, "again", msg.Text())

	r.Report(input, field.Result{Valid: true, Skipped: true})
	assert.Empty(t, input.Classes())
	assert.True(t, msg.Hidden())
}

func TestDOMReporter_NoParent(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument()
	input := doc.CreateElement("input")

	assert.NotPanics(t, func() {
		livecheck.DOMReporter{}.Report(input, field.Result{Valid: false, Message: "x"})
		livecheck.DOMReporter{}.Report(nil, field.Result{})
	})
	assert.True(t, input.HasClass(livecheck.ClassError))
}

func TestMultiReporter(t *testing.T) {
	t.Parallel()

	var calls []string
	r := livecheck.MultiReporter(
		livecheck.ReporterFunc(func(*dom.Element, field.Result) { calls = append(calls, "a") }),
		nil,
		livecheck.ReporterFunc(func(*dom.Element, field.Result) { calls = append(calls, "b") }),
	)
	r.Report(nil, field.Result{})
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestValidity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "untouched", livecheck.Untouched.String())
	assert.Equal(t, "valid", livecheck.Valid.String())
	assert.Equal(t, "invalid", livecheck.Invalid.String())
}
