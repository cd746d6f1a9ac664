package token

// Kind names the markup construct that starts at the cursor.
type Kind int

const (
	EOF         Kind = iota // End of input
	Text                    // Character data up to the next '<'
	Comment                 // <!-- ... -->
	Declaration             // <? ... ?>
	CloseTag                // </name>
	OpenTag                 // <name ...> or <name .../>
)

var names = [...]string{
	EOF:         "EOF",
	Text:        "TEXT",
	Comment:     "COMMENT",
	Declaration: "DECLARATION",
	CloseTag:    "CLOSE_TAG",
	OpenTag:     "OPEN_TAG",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "ILLEGAL"
	}
	return names[k]
}

// Classify reports which construct starts at the beginning of rest.
func Classify(rest string) Kind {
	switch {
	case rest == "":
		return EOF
	case rest[0] != '<':
		return Text
	case len(rest) >= 4 && rest[:4] == "<!--":
		return Comment
	case len(rest) >= 2 && rest[1] == '?':
		return Declaration
	case len(rest) >= 2 && rest[1] == '/':
		return CloseTag
	default:
		return OpenTag
	}
}
