package token

import "fmt"

var kindNames = map[Kind]string{
	Illegal:     "illegal",
	Eof:         "eof",
	Whitespace:  "whitespace",
	Tab:         "tab",
	Newline:     "newline",
	SqlComment:  "comment",
	Ident:       "ident",
	QuotedIdent: "quoted_ident",
	Sconst:      "sconst",
	Iconst:      "iconst",
	Param:       "param",
	Ascii40:     "(",
	Ascii41:     ")",
	Ascii44:     ",",
	Ascii46:     ".",
	Ascii59:     ";",
	Ascii61:     "=",
	Ascii42:     "*",
	Ascii43:     "+",
	Ascii45:     "-",
	Ascii47:     "/",
	DoubleColon: "::",
	NotEq:       "<>",
	Ge:          ">=",
	Le:          "<=",
	Lt:          "<",
	Gt:          ">",
}

// String renders k for diagnostics and debug output. Keyword kinds fall
// through to the reflection-free name table built in keywords.go; every
// other kind must be registered in kindNames or keywordKindNames.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if name, ok := keywordKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
