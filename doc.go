/*
Package tagtree parses XML-like markup into a small tree of typed nodes.

It is meant to be embedded in larger tools that need to look inside simple
markup documents without pulling in a full XML stack. The parser makes a
single pass over the input, tolerates irregular whitespace and mixed quoting
styles, and skips comments wherever they appear. It does not decode
entities, resolve namespaces, interpret DTDs, or handle CDATA sections.

	doc, err := tagtree.Parse(`<?xml version="1.0"?>
	<list kind=todo>
	  <!-- pending -->
	  <item id="1">write tests</item>
	  <item id='2' done="yes"/>
	</list>`)
	if err != nil {
		// err is an errors.ParseErrors carrying line and column
	}
	doc.Declaration.Attributes["version"] // "1.0"
	doc.Root.Children[0].Text()           // "write tests"
	doc.Root.Children[1].SelfClosing()    // true

An element's Content is nil when the element was written as <name/>, and
points at the concatenated text of the element otherwise, so <a/> and
<a></a> can be told apart. Whitespace that directly follows a tag or a
comment is dropped; text is otherwise kept as written.

Only the first top-level element is parsed, and anything after it is
ignored. Malformed input (an unterminated tag, comment or quoted value, an
element that is never closed, stray text before the root) makes Parse fail
with an errors.ParseErrors value rather than return a partial tree.

Trees can be written back out with Marshal or Format. Comments and the
original layout are not preserved, but parsing the output again yields an
equal tree.
*/
package tagtree
