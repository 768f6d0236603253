package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// Lexer splits a move file into tokens. Problems are logged and the first
// one is kept for Err.
type Lexer struct {
	reader  *bufio.Reader
	log     io.Writer
	line    string
	pos     int
	lineNum uint
	eof     bool
	err     error
}

// NewLexer creates a new lexer for the given reader. Diagnostics go to log;
// a nil log discards them.
func NewLexer(r io.Reader, log io.Writer) *Lexer {
	if log == nil {
		log = io.Discard
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		log:    log,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipLine drops the rest of the current line.
func (l *Lexer) skipLine() {
	l.pos = len(l.line)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	// Need a new line?
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		// PGN escape lines
		if strings.HasPrefix(l.line, "%") {
			l.skipLine()
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	l.advance()

	switch {
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == ']':
		return &Token{Type: NoToken}
	case ch == '#' || ch == ';':
		text := strings.TrimSpace(l.line[l.pos:])
		l.skipLine()
		return &Token{Type: CommentToken, TokenString: text}
	case ch == '[':
		return l.gatherTag()
	case ch == '"':
		return l.gatherString()
	case ch == '{':
		return l.gatherComment()
	case ch == '$':
		return l.gatherNAG()
	case ch == '*':
		return &Token{Type: TerminatingResult, TokenString: "*"}
	case ch >= '0' && ch <= '9':
		return l.gatherNumeric()
	case isLetter(ch):
		return l.gatherMove()
	case ch == '(' || ch == ')':
		return l.errorToken("variations are not supported")
	default:
		return l.errorToken(fmt.Sprintf("unexpected character %q", ch))
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	for l.currentChar() == ' ' || l.currentChar() == '\t' {
		l.advance()
	}
	start := l.pos
	for isLetter(l.currentChar()) || isDigit(l.currentChar()) || l.currentChar() == '_' {
		l.advance()
	}
	if l.pos == start {
		return l.errorToken("missing tag name")
	}
	return &Token{Type: TagToken, TokenString: l.line[start:l.pos]}
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '"':
			return &Token{Type: StringToken, TokenString: sb.String()}
		case '\n', '\r':
		default:
			sb.WriteByte(ch)
		}
	}

	l.report(fmt.Sprintf("missing closing quote on line %d", l.lineNum))
	return &Token{Type: StringToken, TokenString: sb.String()}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
		}
		sb.WriteString(l.line[l.pos:])
		if !l.readLine() {
			break
		}
	}
	l.report("missing end of comment")
	return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
}

// gatherNAG gathers a numeric annotation glyph after '$'.
func (l *Lexer) gatherNAG() *Token {
	start := l.pos
	for isDigit(l.currentChar()) {
		l.advance()
	}
	if l.pos == start {
		return l.errorToken("missing NAG number")
	}
	return &Token{Type: NAGToken, TokenString: "$" + l.line[start:l.pos]}
}

// gatherNumeric gathers a move number or a result. Moves never start with
// a digit in coordinate notation.
func (l *Lexer) gatherNumeric() *Token {
	start := l.pos - 1
	for isDigit(l.currentChar()) || l.currentChar() == '-' || l.currentChar() == '/' {
		l.advance()
	}
	text := l.line[start:l.pos]

	switch text {
	case "1-0", "0-1", "1/2-1/2":
		return &Token{Type: TerminatingResult, TokenString: text}
	case "0-0", "0-0-0":
		l.skipSuffix()
		return &Token{Type: MoveToken, TokenString: strings.ReplaceAll(text, "0", "O")}
	}

	num, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return l.errorToken(fmt.Sprintf("unexpected %q", text))
	}
	for l.currentChar() == '.' {
		l.advance()
	}
	return &Token{Type: MoveNumber, MoveNum: uint(num)}
}

// gatherMove gathers a move or castling token, dropping any check, mate
// or annotation suffix.
func (l *Lexer) gatherMove() *Token {
	start := l.pos - 1
	if c := l.line[start]; c == 'O' || c == 'o' {
		for strings.IndexByte("-Oo", l.currentChar()) >= 0 {
			l.advance()
		}
	} else {
		for isLetter(l.currentChar()) || isDigit(l.currentChar()) {
			l.advance()
		}
	}
	text := l.line[start:l.pos]
	l.skipSuffix()
	return &Token{Type: MoveToken, TokenString: text}
}

// skipSuffix drops check, mate and annotation marks after a move.
func (l *Lexer) skipSuffix() {
	for strings.IndexByte("+#!?", l.currentChar()) >= 0 {
		l.advance()
	}
}

func (l *Lexer) errorToken(msg string) *Token {
	l.report(fmt.Sprintf("%s on line %d", msg, l.lineNum))
	return &Token{Type: ErrorToken, TokenString: msg}
}

// report logs a problem and keeps the first one.
func (l *Lexer) report(msg string) {
	fmt.Fprintf(l.log, "%s.\n", capitalize(msg))
	if l.err == nil {
		l.err = errors.Wrapf(errors.ErrParseFailure, "line %d: %s", l.lineNum, msg)
	}
}

// Err returns the first problem met, if any.
func (l *Lexer) Err() error {
	return l.err
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
