package parser

import (
	"fmt"
	"io"
	"strings"
)

// GameText is one game as read from a move file, before any move is
// checked for legality.
type GameText struct {
	Tags      map[string]string
	Moves     []string // coordinate notation, suffixes removed
	Comments  []string
	Result    string // terminating result, empty if none was given
	StartLine uint
	EndLine   uint
}

// FEN returns the starting position given by a FEN tag, or "".
func (g *GameText) FEN() string {
	return g.Tags["FEN"]
}

// MoveText returns the moves separated by spaces.
func (g *GameText) MoveText() string {
	return strings.Join(g.Moves, " ")
}

// Parser parses move files into GameText values.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	log          io.Writer
}

// NewParser creates a new parser for the given reader. Diagnostics go to
// log; a nil log discards them.
func NewParser(r io.Reader, log io.Writer) *Parser {
	if log == nil {
		log = io.Discard
	}
	return &Parser{
		lexer: NewLexer(r, log),
		log:   log,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input. It returns nil, nil when
// no more games are available, and an error wrapping ErrParseFailure when
// the game text was malformed.
func (p *Parser) ParseGame() (*GameText, error) {
	// Get first token if we haven't yet
	if p.currentToken == nil || p.currentToken.Type == NoToken {
		p.nextToken()
	}

	game := &GameText{
		Tags:      make(map[string]string),
		StartLine: p.lexer.LineNumber(),
	}
	game.Comments = p.parseOptCommentList()

	p.parseOptTagList(game)
	p.parseMoveList(game)
	game.Comments = append(game.Comments, p.parseOptCommentList()...)
	game.Result = p.parseResult()
	game.EndLine = p.lexer.LineNumber()

	if p.currentToken.Type == ErrorToken {
		// Skip the rest of the input
		for p.currentToken.Type != EOFToken {
			p.nextToken()
		}
	}
	if err := p.lexer.Err(); err != nil {
		return game, err
	}

	if p.currentToken.Type == EOFToken && len(game.Moves) == 0 && len(game.Tags) == 0 && game.Result == "" {
		return nil, nil
	}
	return game, nil
}

// parseOptTagList parses zero or more tags.
func (p *Parser) parseOptTagList(game *GameText) {
	for p.parseTag(game) {
		game.Comments = append(game.Comments, p.parseOptCommentList()...)
	}
}

// parseTag parses a single tag.
func (p *Parser) parseTag(game *GameText) bool {
	if p.currentToken.Type == TagToken {
		tagName := p.currentToken.TokenString
		p.nextToken()

		if p.currentToken.Type == StringToken {
			game.Tags[tagName] = p.currentToken.TokenString
			p.nextToken()
		} else {
			fmt.Fprintf(p.log, "Missing tag string for %s.\n", tagName)
		}
		return true
	}

	if p.currentToken.Type == StringToken {
		fmt.Fprintf(p.log, "Missing tag name for %s.\n", p.currentToken.TokenString)
		p.nextToken()
		return true
	}

	return false
}

// parseMoveList parses moves with their optional numbers, comments and NAGs.
func (p *Parser) parseMoveList(game *GameText) {
	for {
		switch p.currentToken.Type {
		case MoveNumber, NAGToken:
			p.nextToken()
		case CommentToken:
			game.Comments = append(game.Comments, p.currentToken.TokenString)
			p.nextToken()
		case MoveToken:
			game.Moves = append(game.Moves, p.currentToken.TokenString)
			p.nextToken()
		default:
			return
		}
	}
}

// parseOptCommentList collects consecutive comments.
func (p *Parser) parseOptCommentList() []string {
	var comments []string
	for p.currentToken.Type == CommentToken {
		comments = append(comments, p.currentToken.TokenString)
		p.nextToken()
	}
	return comments
}

// parseResult parses a game result.
func (p *Parser) parseResult() string {
	if p.currentToken.Type == TerminatingResult {
		result := p.currentToken.TokenString
		// NoToken makes the next ParseGame read a fresh token
		p.currentToken = &Token{Type: NoToken}
		return result
	}
	return ""
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*GameText, error) {
	var games []*GameText
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
		if p.currentToken.Type == EOFToken {
			return games, nil
		}
	}
}
