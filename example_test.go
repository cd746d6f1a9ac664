package tagtree_test

import (
	"fmt"
	"os"

	tagtree "github.com/KimNorgaard/go-tagtree"
	"github.com/KimNorgaard/go-tagtree/ast"
)

func ExampleParse() {
	doc, err := tagtree.Parse(`<?xml version="1.0"?>
<list kind=todo>
  <!-- pending -->
  <item id="1">write tests</item>
  <item id='2' done="yes"/>
</list>`)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(doc.Declaration.Attributes["version"])
	for _, item := range doc.Root.ChildrenNamed("item") {
		id, _ := item.Attr("id")
		fmt.Printf("%s %q self-closing=%v\n", id, item.Text(), item.SelfClosing())
	}
	// Output:
	// 1.0
	// 1 "write tests" self-closing=false
	// 2 "" self-closing=true
}

func ExampleParse_error() {
	_, err := tagtree.Parse("<a>\n  <b>unclosed")
	fmt.Println(err)
	// Output:
	// tagtree: parsing error at line 2, column 3: element <b> is not closed
}

func ExampleFormat() {
	root := ast.NewElement("config")
	server := ast.NewElement("server")
	server.Attributes["port"] = "8080"
	server.Content = ast.StringPtr("primary")
	root.Content = ast.StringPtr("")
	root.Children = append(root.Children, server, ast.NewElement("debug"))

	if err := tagtree.Format(os.Stdout, root, tagtree.Indent(2)); err != nil {
		fmt.Println(err)
	}
	fmt.Println()
	// Output:
	// <config>
	//   <server port="8080">primary</server>
	//   <debug/>
	// </config>
}
