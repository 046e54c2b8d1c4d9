package mock

import (
	"io"

	"github.com/fwojciec/lawcite"
)

var _ lawcite.Parser = (*Parser)(nil)

// Parser is a mock implementation of lawcite.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*lawcite.Node, error)
}

func (p *Parser) Parse(r io.Reader) (*lawcite.Node, error) {
	return p.ParseFn(r)
}
