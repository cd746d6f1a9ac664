package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"

	tagtree "github.com/KimNorgaard/go-tagtree"
)

const stdinName = "<stdin>"

// declarationSniffLen bounds how far into the input the declaration is
// looked for.
const declarationSniffLen = 1024

// readInput returns the contents of the file named in args, or of stdin
// when args is empty, together with a name for messages.
func readInput(stdin io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return stdinName, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return stdinName, data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], nil, fmt.Errorf("failed to read input: %w", err)
	}
	return args[0], data, nil
}

// toUTF8 converts data from the named character encoding to UTF-8. With an
// empty label the encoding declared by the document, if any, is used. It
// returns the canonical name of the encoding that was applied.
func toUTF8(data []byte, label string) ([]byte, string, error) {
	if label == "" {
		label = declaredEncoding(data)
	}
	if label == "" {
		return data, "utf-8", nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if name == "utf-8" {
		return data, name, nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s input: %w", name, err)
	}
	return out, name, nil
}

// declaredEncoding returns the encoding attribute of the document's
// declaration, or "" when there is none. The declaration is ASCII in every
// encoding htmlindex knows besides UTF-16, so it can be read before
// conversion.
func declaredEncoding(data []byte) string {
	head := data[:min(len(data), declarationSniffLen)]
	end := bytes.Index(head, []byte("?>"))
	if end < 0 {
		return ""
	}
	doc, err := tagtree.ParseBytes(head[:end+len("?>")])
	if err != nil || doc.Declaration == nil {
		return ""
	}
	return doc.Declaration.Attributes["encoding"]
}
