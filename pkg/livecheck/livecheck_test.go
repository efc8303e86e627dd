package livecheck_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/dom"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/livecheck"
)

type fixture struct {
	doc    *dom.Document
	form   *dom.Element
	email  *dom.Element
	phone  *dom.Element
	nif    *dom.Element
	plate  *dom.Element
	name   *dom.Element
	clock  *livecheck.ManualClock
	coord  *livecheck.Coordinator
	evals  []livecheck.Evaluation
	detach func()
}

func group(doc *dom.Document, input *dom.Element) *dom.Element {
	return doc.CreateElement("div").SetAttr("class", "form-group").Append(input)
}

func newFixture(t *testing.T, opts ...livecheck.Option) *fixture {
	t.Helper()

	f := &fixture{doc: dom.NewDocument(), clock: livecheck.NewManualClock(time.Unix(0, 0))}
	f.form = f.doc.CreateElement("form").SetAttr("id", "customer")
	f.email = f.doc.CreateElement("input").SetAttr("type", "email").SetAttr("id", "email")
	f.phone = f.doc.CreateElement("input").SetAttr("type", "tel").SetAttr("id", "telefono")
	f.nif = f.doc.CreateElement("input").SetAttr("type", "text").SetAttr("id", "nif")
	f.plate = f.doc.CreateElement("input").SetAttr("type", "text").SetAttr("id", "matricula")
	f.name = f.doc.CreateElement("input").SetAttr("type", "text").SetAttr("id", "nombre")

	f.form.Append(
		group(f.doc, f.name),
		group(f.doc, f.email),
		group(f.doc, f.phone),
		group(f.doc, f.nif),
		group(f.doc, f.plate),
	)
	f.doc.Body().AppendChild(f.form)

	base := []livecheck.Option{
		livecheck.WithClock(f.clock),
		livecheck.WithEvaluateHook(func(ev livecheck.Evaluation) { f.evals = append(f.evals, ev) }),
	}
	f.coord = livecheck.New(append(base, opts...)...)

	detach, err := f.coord.Attach(f.doc)
	require.NoError(t, err)
	f.detach = detach
	t.Cleanup(detach)
	return f
}

func messageOf(el *dom.Element) *dom.Element {
	return el.Parent().Find(dom.ByClass(livecheck.ClassFieldError))
}

func TestCoordinator_DebouncesInput(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.phone, "6")
	f.clock.Advance(200 * time.Millisecond)
	f.doc.Input(f.phone, "612 345 678")
	f.clock.Advance(499 * time.Millisecond)
	assert.Empty(t, f.evals)
	assert.True(t, f.coord.Pending(f.phone))

	f.clock.Advance(time.Millisecond)
	require.Len(t, f.evals, 1)
	assert.Equal(t, "612 345 678", f.evals[0].Value)
	assert.Equal(t, livecheck.TriggerInput, f.evals[0].Trigger)
	assert.True(t, f.phone.HasClass(livecheck.ClassSuccess))
	assert.False(t, f.coord.Pending(f.phone))

	st, ok := f.coord.State(f.phone)
	require.True(t, ok)
	assert.Equal(t, livecheck.Valid, st.Validity)
	assert.Equal(t, field.KindPhone, st.Kind)
}

func TestCoordinator_ReadsCurrentValueWhenTimerFires(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.nif, "12345678A")
	f.doc.Do(func() { f.nif.SetValue("12345678Z") })
	f.clock.Advance(livecheck.DefaultDelay)

	require.Len(t, f.evals, 1)
	assert.Equal(t, "12345678Z", f.evals[0].Value)
	assert.True(t, f.evals[0].Result.Valid)
}

func TestCoordinator_FieldsDebounceIndependently(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.email, "ana@example.com")
	f.clock.Advance(300 * time.Millisecond)
	f.doc.Input(f.nif, "12345678Z")
	f.clock.Advance(200 * time.Millisecond)

	require.Len(t, f.evals, 1)
	assert.Same(t, f.email, f.evals[0].Element)
	assert.True(t, f.coord.Pending(f.nif))

	f.clock.Advance(300 * time.Millisecond)
	require.Len(t, f.evals, 2)
	assert.Same(t, f.nif, f.evals[1].Element)
}

func TestCoordinator_BlurEvaluatesAndCancelsTimer(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.plate, "1234-bcd")
	f.doc.Blur(f.plate)

	require.Len(t, f.evals, 1)
	assert.Equal(t, livecheck.TriggerBlur, f.evals[0].Trigger)
	assert.True(t, f.evals[0].Result.Valid)
	assert.False(t, f.coord.Pending(f.plate))

	f.clock.Advance(time.Second)
	assert.Len(t, f.evals, 1)
}

func TestCoordinator_InvalidShowsMessage(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.email, "ana@")
	f.doc.Blur(f.email)

	assert.True(t, f.email.HasClass(livecheck.ClassError))
	msg := messageOf(f.email)
	require.NotNil(t, msg)
	assert.Equal(t, "invalid email format", msg.Text())
	assert.False(t, msg.Hidden())
	assert.Equal(t, "alert", msg.Attr("role"))

	f.doc.Input(f.email, "ana@example.com")
	f.doc.Blur(f.email)
	assert.True(t, f.email.HasClass(livecheck.ClassSuccess))
	assert.False(t, f.email.HasClass(livecheck.ClassError))
	assert.True(t, msg.Hidden())
	assert.Len(t, f.email.Parent().FindAll(dom.ByClass(livecheck.ClassFieldError)), 1)
}

func TestCoordinator_EmptyValueClearsMarkers(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.phone, "123")
	f.doc.Blur(f.phone)
	require.True(t, f.phone.HasClass(livecheck.ClassError))

	f.doc.Input(f.phone, "   ")
	f.doc.Blur(f.phone)
	assert.False(t, f.phone.HasClass(livecheck.ClassError))
	assert.False(t, f.phone.HasClass(livecheck.ClassSuccess))
	assert.True(t, messageOf(f.phone).Hidden())

	st, ok := f.coord.State(f.phone)
	require.True(t, ok)
	assert.Equal(t, livecheck.Untouched, st.Validity)
}

func TestCoordinator_IgnoresUntrackedFields(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.name, "Ana")
	f.doc.Blur(f.name)
	f.clock.Advance(time.Second)

	assert.Empty(t, f.evals)
	_, ok := f.coord.State(f.name)
	assert.False(t, ok)
}

func TestCoordinator_SubmitBlocksOnInvalidField(t *testing.T) {
	f := newFixture(t)

	var submitted int
	f.form.AddEventListener(dom.EventSubmit, func(*dom.Event) { submitted++ }, false)
	f.doc.Root().AddEventListener(dom.EventSubmit, func(*dom.Event) { submitted++ }, true)

	f.doc.Do(func() {
		f.email.SetValue("ana@example.com")
		f.phone.SetValue("612345678")
		f.nif.SetValue("12345678A")
	})
	f.doc.Input(f.nif, "12345678A")

	ok := f.doc.Submit(f.form)

	assert.False(t, ok)
	assert.Zero(t, submitted)
	assert.False(t, f.coord.Pending(f.nif))

	require.Len(t, f.evals, 4)
	order := make([]*dom.Element, 0, len(f.evals))
	for _, ev := range f.evals {
		assert.Equal(t, livecheck.TriggerSubmit, ev.Trigger)
		order = append(order, ev.Element)
	}
	assert.Equal(t, []*dom.Element{f.email, f.phone, f.nif, f.plate}, order)

	errs := f.form.FindAll(func(el *dom.Element) bool {
		return el.HasClass(livecheck.ClassFieldError) && !el.Hidden()
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid national ID", errs[0].Text())
}

func TestCoordinator_SubmitProceedsWhenValidOrEmpty(t *testing.T) {
	f := newFixture(t)

	f.doc.Do(func() {
		f.email.SetValue("ana@example.com")
		f.nif.SetValue("x1234567l")
	})

	assert.True(t, f.doc.Submit(f.form))
	assert.True(t, f.nif.HasClass(livecheck.ClassSuccess))
	assert.False(t, f.phone.HasClass(livecheck.ClassError))
}

func TestCoordinator_CoversLateFields(t *testing.T) {
	f := newFixture(t)

	extra := f.doc.CreateElement("input").SetAttr("type", "tel")
	f.doc.Do(func() { f.form.AppendChild(group(f.doc, extra)) })

	f.doc.Input(extra, "512345678")
	f.doc.Blur(extra)

	require.Len(t, f.evals, 1)
	assert.True(t, extra.HasClass(livecheck.ClassError))
	assert.Equal(t, "must be a 9-digit number starting with 6, 7, 8, or 9", messageOf(extra).Text())
}

func TestCoordinator_DropsRemovedFields(t *testing.T) {
	f := newFixture(t)

	f.doc.Blur(f.email)
	_, ok := f.coord.State(f.email)
	require.True(t, ok)

	f.doc.Input(f.phone, "612345678")
	f.doc.Do(func() { f.phone.Parent().Remove() })
	f.clock.Advance(time.Second)
	assert.Empty(t, f.evals[1:])

	f.doc.Do(func() { f.email.Parent().Remove() })
	f.doc.Blur(f.nif)

	_, ok = f.coord.State(f.email)
	assert.False(t, ok)
	_, ok = f.coord.State(f.phone)
	assert.False(t, ok)
}

func TestCoordinator_Detach(t *testing.T) {
	f := newFixture(t)

	f.doc.Input(f.email, "ana@")
	f.detach()
	f.detach()

	f.clock.Advance(time.Second)
	f.doc.Blur(f.email)
	assert.Empty(t, f.evals)
	assert.True(t, f.doc.Submit(f.form))
	assert.Zero(t, f.clock.Pending())

	_, err := f.coord.Attach(f.doc)
	assert.NoError(t, err)
}

func TestCoordinator_AttachTwice(t *testing.T) {
	f := newFixture(t)

	_, err := f.coord.Attach(f.doc)
	assert.ErrorIs(t, err, livecheck.ErrAlreadyAttached)

	_, err = livecheck.New().Attach(nil)
	assert.ErrorIs(t, err, livecheck.ErrNilDocument)
}

func TestCoordinator_ValidateFieldAndForm(t *testing.T) {
	f := newFixture(t)

	f.doc.Do(func() { f.plate.SetValue("M1234AB") })
	res, tracked := f.coord.ValidateField(f.plate)
	require.True(t, tracked)
	assert.True(t, res.Valid)

	_, tracked = f.coord.ValidateField(f.name)
	assert.False(t, tracked)

	assert.True(t, f.coord.ValidateForm(f.form))
	f.doc.Do(func() { f.plate.SetValue("1234AEI") })
	assert.False(t, f.coord.ValidateForm(f.form))
	assert.Equal(t, livecheck.TriggerManual, f.evals[len(f.evals)-1].Trigger)
}

func TestCoordinator_CustomClassifierAndDelay(t *testing.T) {
	f := newFixture(t,
		livecheck.WithDelay(100*time.Millisecond),
		livecheck.WithClassifier(field.Classifier{NationalIDFields: []string{"dni"}}),
	)
	dni := f.doc.CreateElement("input").SetAttr("id", "dni")
	f.doc.Do(func() { f.form.AppendChild(group(f.doc, dni)) })

	f.doc.Input(dni, "12345678z")
	f.doc.Input(f.nif, "12345678z")
	f.clock.Advance(100 * time.Millisecond)

	require.Len(t, f.evals, 1)
	assert.Same(t, dni, f.evals[0].Element)
	assert.Equal(t, 100*time.Millisecond, f.coord.Delay())
}

func TestNewFromConfig(t *testing.T) {
	clock := livecheck.NewManualClock(time.Unix(0, 0))
	c := livecheck.NewFromConfig(livecheck.Config{
		Debounce:    250 * time.Millisecond,
		PlateFields: []string{"plate"},
	}, livecheck.WithClock(clock))
	assert.Equal(t, 250*time.Millisecond, c.Delay())

	c = livecheck.NewFromConfig(livecheck.Config{})
	assert.Equal(t, livecheck.DefaultDelay, c.Delay())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { livecheck.WithDelay(-time.Second) })
	assert.Panics(t, func() { livecheck.WithEvaluateHook(nil) })
}
