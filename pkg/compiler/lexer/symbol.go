package lexer

import "sync"

// Symbol is the canonical, interned (text, kind) pair behind one or more
// tokens. For any lexeme text at most one Symbol exists per table for the
// life of the process, so symbols compare equal by pointer.
type Symbol struct {
	text string
	kind Kind
}

// Text returns the canonical lexeme.
func (s *Symbol) Text() string { return s.text }

// Kind returns the token kind the lexeme was first interned with.
func (s *Symbol) Kind() Kind { return s.kind }

func (s *Symbol) String() string { return s.text }

// SymbolTable interns lexemes. Reserved words and operators are preloaded,
// so interning an identifier that spells a reserved word resolves to the
// reserved symbol. Interning is first-writer-wins and safe for concurrent
// use by scanners running over different files.
type SymbolTable struct {
	mu      sync.Mutex
	symbols map[string]*Symbol
}

// reserved is everything the table knows before any file is scanned.
var reserved = map[string]Kind{
	"program":  KindProgram,
	"int":      KindInt,
	"boolean":  KindBoolean,
	"if":       KindIf,
	"then":     KindThen,
	"else":     KindElse,
	"while":    KindWhile,
	"function": KindFunction,
	"return":   KindReturn,

	"{":  KindLeftBrace,
	"}":  KindRightBrace,
	"(":  KindLeftParen,
	")":  KindRightParen,
	",":  KindComma,
	"=":  KindAssign,
	"==": KindEqual,
	"!=": KindNotEqual,
	"<":  KindLess,
	"<=": KindLessEqual,
	">":  KindGreater,
	">=": KindGreaterEqual,
	"+":  KindPlus,
	"-":  KindMinus,
	"|":  KindOr,
	"&":  KindAnd,
	"*":  KindMultiply,
	"/":  KindDivide,
	"//": KindComment,
}

// NewSymbolTable builds a table preloaded with the reserved words and the
// operator/separator symbols.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{symbols: make(map[string]*Symbol, len(reserved)*2)}
	for text, kind := range reserved {
		t.symbols[text] = &Symbol{text: text, kind: kind}
	}
	return t
}

// Intern returns the canonical symbol for text, creating it with the
// proposed kind on first sight. A lexeme already in the table keeps the
// kind it was first interned with; that is how an identifier spelling a
// reserved word comes back as the reserved symbol, and how identical
// literal text shares one symbol.
func (t *SymbolTable) Intern(text string, kind Kind) *Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sym, ok := t.symbols[text]; ok {
		return sym
	}
	sym := &Symbol{text: text, kind: kind}
	t.symbols[text] = sym
	return sym
}

// Lookup returns the symbol for text if one exists, without interning.
// The scanner uses it to probe two-character operator candidates and to
// validate operator lexemes.
func (t *SymbolTable) Lookup(text string) (*Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sym, ok := t.symbols[text]
	return sym, ok
}
