// Package rangeropt builds and validates the run configuration of the
// ranger forest tool from a raw argument vector.
//
// A parse walks three stages: the scanner matches tokens against the option
// grammar, each matched value is coerced into its typed Config field with
// local range checks, and the completed record passes through cross-field
// validation. A single malformed option aborts the whole parse; no partial
// configuration is ever returned. --help and --version cut the parse short
// with an informational outcome instead of a configuration.
//
// Tokens which match no option are collected as leftovers and reported on
// the Result rather than rejected.
package rangeropt

import (
	"os"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/imbs-hl/rangeropt/parse"
)

// ConfigureParserFunc is used to adjust a Parser during construction
type ConfigureParserFunc func(p *Parser)

// Parser holds the option grammar and parses argument vectors against it.
// A Parser is stateless across parses and may be reused.
type Parser struct {
	grammar   *orderedmap.OrderedMap
	lookup    map[string]string
	lookupEnv func(string) (string, bool)
}

// NewParser creates a Parser over the full option grammar
func NewParser(configs ...ConfigureParserFunc) *Parser {
	grammar := newGrammar()
	p := &Parser{
		grammar:   grammar,
		lookup:    shortLookup(grammar),
		lookupEnv: os.LookupEnv,
	}
	for _, config := range configs {
		config(p)
	}

	return p
}

// WithEnvLookup overrides the environment lookup used for RANGER_* defaults
func WithEnvLookup(lookup func(string) (string, bool)) ConfigureParserFunc {
	return func(p *Parser) {
		p.lookupEnv = lookup
	}
}

// Parse scans args (excluding the program name), applies each option to a
// fresh Config seeded with defaults, and validates the result. On success
// the returned Result carries the frozen Config and any leftover tokens; on
// a help or version request it carries the InfoRequest instead. The error
// unwraps to ErrMissingValue, ErrInvalidValue or ErrConfiguration.
func (p *Parser) Parse(args []string) (*Result, error) {
	return p.parse(nil, args)
}

// ParseWithEnv is Parse with RANGER_* environment defaults applied first,
// so explicit arguments override them
func (p *Parser) ParseWithEnv(args []string) (*Result, error) {
	return p.parse(p.envArgs(), args)
}

// ParseString splits a shell-style command line and parses the pieces
func (p *Parser) ParseString(cmdline string) (*Result, error) {
	args, err := parse.Split(cmdline)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

func (p *Parser) parse(seed, args []string) (*Result, error) {
	cfg := defaultConfig()
	s := newScanner(p, cfg, seed, args)

	info, err := s.run()
	if err != nil {
		return nil, err
	}
	if info != NoInfoRequest {
		return &Result{Info: info}, nil
	}

	if err := checkConfig(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Leftovers: s.leftovers}, nil
}

func (p *Parser) lookupOption(name string) (*option, bool) {
	if long, ok := p.lookup[name]; ok && len(name) == 1 {
		name = long
	}
	v, found := p.grammar.Get(name)
	if !found {
		return nil, false
	}

	return v.(*option), true
}
