package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sample() *Document {
	c := NewElement("c")
	c.Content = StringPtr("baz")

	b := NewElement("b")
	b.Content = StringPtr("bar ")
	b.Children = append(b.Children, c)

	img := NewElement("img")
	img.Attributes["src"] = "x.png"
	img.Attributes["alt"] = `say "hi"`

	a := NewElement("a")
	a.Content = StringPtr("foo ")
	a.Children = append(a.Children, b, img)

	return &Document{
		Declaration: &Declaration{Attributes: map[string]string{"version": "1.0"}},
		Root:        a,
	}
}

func TestString(t *testing.T) {
	expected := `<?xml version="1.0"?><a>foo <b>bar <c>baz</c></b><img alt='say "hi"' src="x.png"/></a>`
	require.Equal(t, expected, sample().String())
}

func TestEmptyDocumentString(t *testing.T) {
	require.Empty(t, (&Document{}).String())
}

func TestSelfClosingAndText(t *testing.T) {
	e := NewElement("t")
	require.True(t, e.SelfClosing())
	require.Empty(t, e.Text())
	require.Equal(t, "<t/>", e.String())

	e.Content = StringPtr("")
	require.False(t, e.SelfClosing())
	require.Equal(t, "<t></t>", e.String())
}

func TestLookups(t *testing.T) {
	root := sample().Root

	v, ok := root.Child("img").Attr("src")
	require.True(t, ok)
	require.Equal(t, "x.png", v)

	_, ok = root.Attr("missing")
	require.False(t, ok)

	require.Nil(t, root.Child("nope"))
	require.Len(t, root.ChildrenNamed("b"), 1)
	require.Empty(t, root.ChildrenNamed("nope"))
}

func TestWalk(t *testing.T) {
	var names []string
	sample().Root.Walk(func(e *Element) bool {
		names = append(names, e.Name)
		return true
	})
	require.Equal(t, []string{"a", "b", "c", "img"}, names)

	names = nil
	sample().Root.Walk(func(e *Element) bool {
		names = append(names, e.Name)
		return e.Name != "b"
	})
	require.Equal(t, []string{"a", "b", "img"}, names)
}

func TestQuoteAttr(t *testing.T) {
	require.Equal(t, `"plain"`, QuoteAttr("plain"))
	require.Equal(t, `"it's"`, QuoteAttr("it's"))
	require.Equal(t, `'say "hi"'`, QuoteAttr(`say "hi"`))
}
