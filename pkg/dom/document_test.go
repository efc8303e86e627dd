package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/dom"
)

// buildForm returns document > body > form > div.group > input#nif
func buildForm(t *testing.T) (*dom.Document, *dom.Element, *dom.Element, *dom.Element) {
	t.Helper()

	doc := dom.NewDocument()
	form := doc.CreateElement("FORM").SetAttr("id", "customer")
	group := doc.CreateElement("div").SetAttr("class", "group")
	input := doc.CreateElement("input").SetAttr("id", "nif").SetAttr("type", "text")

	doc.Body().AppendChild(form).AppendChild(group).AppendChild(input)
	return doc, form, group, input
}

func TestDispatch_PhaseOrder(t *testing.T) {
	doc, form, _, input := buildForm(t)

	var order []string
	record := func(name string) dom.Listener {
		return func(ev *dom.Event) { order = append(order, name) }
	}

	doc.Root().AddEventListener(dom.EventInput, record("root-capture"), true)
	doc.Root().AddEventListener(dom.EventInput, record("root-bubble"), false)
	form.AddEventListener(dom.EventInput, record("form-capture"), true)
	form.AddEventListener(dom.EventInput, record("form-bubble"), false)
	input.AddEventListener(dom.EventInput, record("target"), false)
	input.AddEventListener(dom.EventBlur, record("wrong-type"), false)

	doc.Input(input, "123")

	assert.Equal(t, []string{"root-capture", "form-capture", "target", "form-bubble", "root-bubble"}, order)
	assert.Equal(t, "123", input.Value())
}

func TestDispatch_BlurDoesNotBubble(t *testing.T) {
	doc, _, _, input := buildForm(t)

	var captured, bubbled int
	doc.Root().AddEventListener(dom.EventBlur, func(ev *dom.Event) {
		captured++
		assert.Same(t, input, ev.Target)
		assert.Equal(t, dom.PhaseCapturing, ev.Phase)
	}, true)
	doc.Root().AddEventListener(dom.EventBlur, func(*dom.Event) { bubbled++ }, false)

	doc.Blur(input)

	assert.Equal(t, 1, captured)
	assert.Equal(t, 0, bubbled)
}

func TestDispatch_StopPropagation(t *testing.T) {
	doc, form, _, _ := buildForm(t)

	var calls []string
	doc.Root().AddEventListener(dom.EventSubmit, func(ev *dom.Event) {
		calls = append(calls, "first")
		ev.PreventDefault()
		ev.StopPropagation()
	}, true)
	doc.Root().AddEventListener(dom.EventSubmit, func(*dom.Event) { calls = append(calls, "same-node") }, true)
	form.AddEventListener(dom.EventSubmit, func(*dom.Event) { calls = append(calls, "form") }, false)

	proceed := doc.Submit(form)

	assert.False(t, proceed)
	assert.Equal(t, []string{"first", "same-node"}, calls)
}

func TestDispatch_StopImmediatePropagation(t *testing.T) {
	doc, form, _, _ := buildForm(t)

	var calls []string
	doc.Root().AddEventListener(dom.EventSubmit, func(ev *dom.Event) {
		calls = append(calls, "first")
		ev.StopImmediatePropagation()
	}, true)
	doc.Root().AddEventListener(dom.EventSubmit, func(*dom.Event) { calls = append(calls, "same-node") }, true)
	form.AddEventListener(dom.EventSubmit, func(*dom.Event) { calls = append(calls, "form") }, false)

	assert.True(t, doc.Submit(form))
	assert.Equal(t, []string{"first"}, calls)
}

func TestAddEventListener_Remove(t *testing.T) {
	doc, _, _, input := buildForm(t)

	calls := 0
	remove := doc.Root().AddEventListener(dom.EventInput, func(*dom.Event) { calls++ }, true)
	doc.Input(input, "a")
	remove()
	doc.Input(input, "b")

	assert.Equal(t, 1, calls)
}

func TestDelegation_CoversLateElements(t *testing.T) {
	doc, form, _, _ := buildForm(t)

	var seen []string
	doc.Root().AddEventListener(dom.EventBlur, func(ev *dom.Event) {
		seen = append(seen, ev.Target.ID())
	}, true)

	late := doc.CreateElement("input").SetAttr("id", "matricula")
	form.AppendChild(late)
	doc.Blur(late)

	assert.Equal(t, []string{"matricula"}, seen)
}

func TestElement_Tree(t *testing.T) {
	doc, form, group, input := buildForm(t)

	assert.Equal(t, "form", form.Tag())
	assert.True(t, input.IsConnected())
	assert.True(t, form.Contains(input))
	assert.False(t, input.Contains(form))
	assert.Same(t, group, input.Parent())
	assert.Same(t, input, doc.GetElementByID("nif"))
	assert.Same(t, form, input.Closest(dom.ByTag("form")))

	second := doc.CreateElement("input").SetAttr("id", "email")
	form.AppendChild(second)
	ids := []string{}
	for _, el := range form.FindAll(dom.ByTag("input")) {
		ids = append(ids, el.ID())
	}
	assert.Equal(t, []string{"nif", "email"}, ids, "document order")

	group.Remove()
	assert.False(t, input.IsConnected())
	assert.Nil(t, doc.GetElementByID("nif"))
	assert.Same(t, group, input.Parent(), "subtree stays intact")

	// moving an element detaches it from its previous parent
	form.AppendChild(second)
	other := doc.CreateElement("div")
	doc.Body().AppendChild(other).AppendChild(second)
	assert.Empty(t, form.FindAll(dom.ByID("email")))
	assert.Same(t, other, second.Parent())

	// cycles are refused
	assert.Same(t, form, form.AppendChild(form))
	doc.Body().AppendChild(form)
	form.AppendChild(doc.Body())
	assert.NotSame(t, form, doc.Body().Parent())
}

func TestElement_ClassesAndAttrs(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("input").SetAttr("class", "a  b").SetAttr("TYPE", "email")

	assert.Equal(t, "email", el.Attr("type"))
	assert.Equal(t, []string{"a", "b"}, el.Classes())

	el.AddClass("b", "c", "")
	assert.Equal(t, []string{"a", "b", "c"}, el.Classes())

	el.RemoveClass("a", "missing")
	assert.Equal(t, []string{"b", "c"}, el.Classes())
	assert.True(t, el.HasClass("c"))
	assert.False(t, el.HasClass("a"))

	el.SetText("hello")
	el.SetHidden(true)
	assert.Equal(t, "hello", el.Text())
	assert.True(t, el.Hidden())
	assert.Same(t, doc, el.OwnerDocument())
}

func TestDocument_Do(t *testing.T) {
	doc := dom.NewDocument()
	ran := false
	doc.Do(func() { ran = true })
	require.True(t, ran)
}

func TestAddEventListener_NilPanics(t *testing.T) {
	doc := dom.NewDocument()
	assert.Panics(t, func() { doc.Root().AddEventListener(dom.EventBlur, nil, true) })
}
