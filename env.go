package rangeropt

import (
	"strconv"

	"github.com/iancoleman/strcase"
)

// EnvPrefix is prepended to the screaming-snake form of an option's long
// name when looking up environment defaults, e.g. RANGER_NTREE for --ntree.
const EnvPrefix = "RANGER_"

// envName derives the environment variable name of an option
func envName(long string) string {
	return EnvPrefix + strcase.ToScreamingSnake(long)
}

// envArgs translates environment defaults into pseudo-arguments. They are
// scanned ahead of the real argument vector, so anything given explicitly
// wins by the usual last-occurrence rule. Informational options are never
// sourced from the environment, and boolean options are only honored when
// their value parses as true.
func (p *Parser) envArgs() []string {
	var args []string
	for pair := p.grammar.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(*option)
		if opt.info != NoInfoRequest {
			continue
		}
		value, ok := p.lookupEnv(envName(opt.long))
		if !ok {
			continue
		}
		if opt.arity == arityFlag {
			if on, err := strconv.ParseBool(value); err == nil && on {
				args = append(args, "--"+opt.long)
			}
			continue
		}
		args = append(args, "--"+opt.long+"="+value)
	}

	return args
}
