package lexer

import (
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/token"
)

// Operator tables are tried longest-first so the tokenizer always performs
// maximal munch: no recognized operator at a given offset is a prefix of a
// longer recognized operator left unmatched.
var fourCharOps = map[string]token.Kind{
	">>>=": token.USHR_ASSIGN,
}

var threeCharOps = map[string]token.Kind{
	">>>": token.USHR,
	"===": token.SEQ,
	"!==": token.SNE,
	"...": token.ELLIPSIS,
	"**=": token.STAR_STAR_ASSIGN,
	"&&=": token.AND_ASSIGN,
	"||=": token.OR_ASSIGN,
	"??=": token.NULLISH_ASSIGN,
	"<<=": token.SHL_ASSIGN,
	">>=": token.SHR_ASSIGN,
}

var twoCharOps = map[string]token.Kind{
	"==": token.EQ, "!=": token.NE, "<=": token.LE, ">=": token.GE,
	"&&": token.AND, "||": token.OR, "??": token.NULLISH,
	"<<": token.SHL, ">>": token.SHR, "**": token.STAR_STAR,
	"++": token.PLUS_PLUS, "--": token.MINUS_MINUS,
	"=>": token.ARROW, "?.": token.OPTIONAL_CHAIN,
	"+=": token.PLUS_ASSIGN, "-=": token.MINUS_ASSIGN,
	"*=": token.STAR_ASSIGN, "/=": token.SLASH_ASSIGN, "%=": token.PERCENT_ASSIGN,
	"&=": token.AMP_ASSIGN, "|=": token.PIPE_ASSIGN, "^=": token.CARET_ASSIGN,
}

var oneCharOps = map[byte]token.Kind{
	'(': token.LPAREN, ')': token.RPAREN,
	'{': token.LBRACE, '}': token.RBRACE,
	'[': token.LBRACKET, ']': token.RBRACKET,
	';': token.SEMICOLON, ',': token.COMMA, '.': token.DOT,
	':': token.COLON, '?': token.QUESTION,
	'+': token.PLUS, '-': token.MINUS, '*': token.STAR, '/': token.SLASH, '%': token.PERCENT,
	'=': token.ASSIGN, '<': token.LT, '>': token.GT, '!': token.NOT,
	'&': token.AMP, '|': token.PIPE, '^': token.CARET, '~': token.TILDE,
}

// readOperator recognizes the next punctuator/operator by maximal munch,
// trying four-, then three-, then two-, then one-character matches. A byte
// that matches none of these is a lexical error naming the offending byte.
func (l *Lexer) readOperator(start diag.Position) (token.Token, *diag.Diagnostic) {
	rem := l.cur.Remainder()

	if len(rem) >= 4 {
		if k, ok := fourCharOps[rem[:4]]; ok {
			return l.takeOperator(start, 4, k), nil
		}
	}
	if len(rem) >= 3 {
		if k, ok := threeCharOps[rem[:3]]; ok {
			return l.takeOperator(start, 3, k), nil
		}
	}
	if len(rem) >= 2 {
		if k, ok := twoCharOps[rem[:2]]; ok {
			return l.takeOperator(start, 2, k), nil
		}
	}
	if len(rem) >= 1 {
		if k, ok := oneCharOps[rem[0]]; ok {
			return l.takeOperator(start, 1, k), nil
		}
	}

	b := l.cur.Peek()
	return token.Token{}, diag.New(diag.LEXER_INVALID_CHAR, start, "unrecognized character %q", b)
}

// takeOperator advances the cursor by width bytes and builds the token for
// the matched operator.
func (l *Lexer) takeOperator(start diag.Position, width int, k token.Kind) token.Token {
	from := l.cur.Offset()
	for i := 0; i < width; i++ {
		l.cur.Advance()
	}
	return token.Token{Kind: k, Lexeme: l.cur.Slice(from), Start: start, End: l.cur.Pos()}
}
