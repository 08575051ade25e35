package lexer

import "fmt"

// Kind classifies an interned symbol and, through it, every token that
// refers to that symbol.
type Kind uint8

const (
	KindBogus Kind = iota // lookup probe; never attached to an emitted token
	KindEOF

	// Literals and identifiers
	KindIdentifier
	KindNumber    // raw decimal digit run, never converted here
	KindStringLit // quotes included in the lexeme
	KindCharLit   // exactly one character between quotes

	// Reserved words
	KindProgram  // program
	KindInt      // int
	KindBoolean  // boolean
	KindIf       // if
	KindThen     // then
	KindElse     // else
	KindWhile    // while
	KindFunction // function
	KindReturn   // return

	// Operators and separators
	KindLeftBrace    // {
	KindRightBrace   // }
	KindLeftParen    // (
	KindRightParen   // )
	KindComma        // ,
	KindAssign       // =
	KindEqual        // ==
	KindNotEqual     // !=
	KindLess         // <
	KindLessEqual    // <=
	KindGreater      // >
	KindGreaterEqual // >=
	KindPlus         // +
	KindMinus        // -
	KindOr           // |
	KindAnd          // &
	KindMultiply     // *
	KindDivide       // /
	KindComment      // // (filtered; never emitted)
)

var kindNames = [...]string{
	KindBogus:        "Bogus",
	KindEOF:          "EOF",
	KindIdentifier:   "Identifier",
	KindNumber:       "Number",
	KindStringLit:    "StringLit",
	KindCharLit:      "CharLit",
	KindProgram:      "Program",
	KindInt:          "Int",
	KindBoolean:      "Boolean",
	KindIf:           "If",
	KindThen:         "Then",
	KindElse:         "Else",
	KindWhile:        "While",
	KindFunction:     "Function",
	KindReturn:       "Return",
	KindLeftBrace:    "LeftBrace",
	KindRightBrace:   "RightBrace",
	KindLeftParen:    "LeftParen",
	KindRightParen:   "RightParen",
	KindComma:        "Comma",
	KindAssign:       "Assign",
	KindEqual:        "Equal",
	KindNotEqual:     "NotEqual",
	KindLess:         "Less",
	KindLessEqual:    "LessEqual",
	KindGreater:      "Greater",
	KindGreaterEqual: "GreaterEqual",
	KindPlus:         "Plus",
	KindMinus:        "Minus",
	KindOr:           "Or",
	KindAnd:          "And",
	KindMultiply:     "Multiply",
	KindDivide:       "Divide",
	KindComment:      "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is one classified lexeme. Left and Right are the 0-based columns of
// the lexeme's first and last runes (Right == Left-1 while zero-width), Line
// is the source line in effect when the scan of the lexeme completed.
type Token struct {
	Left   int
	Right  int
	Line   int
	Symbol *Symbol
}

// Kind reports the token's classification, derived from its symbol.
func (t Token) Kind() Kind {
	if t.Symbol == nil {
		return KindEOF
	}
	return t.Symbol.Kind()
}

// Text returns the token's lexeme.
func (t Token) Text() string {
	if t.Symbol == nil {
		return ""
	}
	return t.Symbol.Text()
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q left=%d right=%d line=%d", t.Kind(), t.Text(), t.Left, t.Right, t.Line)
}
