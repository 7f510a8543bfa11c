package rangeropt

import (
	"strings"

	"github.com/ef-ds/deque"
)

// scanner walks the pending argument queue against the grammar and feeds
// each matched value to its coercer. It performs no cross-field reasoning.
type scanner struct {
	parser    *Parser
	work      *deque.Deque
	cfg       *Config
	leftovers []string
}

func newScanner(p *Parser, cfg *Config, args ...[]string) *scanner {
	s := &scanner{
		parser: p,
		work:   deque.New(),
		cfg:    cfg,
	}
	for _, group := range args {
		for _, arg := range group {
			s.work.PushBack(arg)
		}
	}

	return s
}

func (s *scanner) next() (string, bool) {
	v, ok := s.work.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// run scans the queue to exhaustion, to the first failure, or to an
// informational flag, whichever comes first
func (s *scanner) run() (InfoRequest, error) {
	for {
		arg, ok := s.next()
		if !ok {
			return NoInfoRequest, nil
		}

		if arg == "--" {
			// end of options, the rest is left as given
			for {
				rest, more := s.next()
				if !more {
					return NoInfoRequest, nil
				}
				s.leftovers = append(s.leftovers, rest)
			}
		}

		name, value, hasValue, isOption := splitOption(arg)
		if !isOption {
			s.leftovers = append(s.leftovers, arg)
			continue
		}

		opt, found := s.parser.lookupOption(name)
		if !found {
			s.leftovers = append(s.leftovers, arg)
			continue
		}

		if opt.info != NoInfoRequest {
			return opt.info, nil
		}

		if opt.arity == arityFlag {
			if hasValue {
				return NoInfoRequest, &InvalidValueError{Option: opt.long, Raw: value,
					Reason: "no value (this option takes none)"}
			}
			if err := opt.set(s.cfg, ""); err != nil {
				return NoInfoRequest, err
			}
			continue
		}

		if !hasValue {
			value, ok = s.next()
			if !ok {
				return NoInfoRequest, &MissingValueError{Option: opt.long}
			}
		}
		if err := opt.set(s.cfg, value); err != nil {
			return NoInfoRequest, err
		}
	}
}

// splitOption classifies a raw token. Long options are "--name" with an
// optional "=value" remainder, aliases are a single dash and letter. Any
// other token, dashed or not, is not an option and ends up as a leftover.
func splitOption(arg string) (name, value string, hasValue, isOption bool) {
	var stripped string
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		stripped = arg[2:]
	case strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 1:
		stripped = arg[1:]
		if i := strings.IndexByte(stripped, '='); i != 1 && len(stripped) != 1 {
			return "", "", false, false
		}
	default:
		return "", "", false, false
	}

	if i := strings.IndexByte(stripped, '='); i >= 0 {
		return stripped[:i], stripped[i+1:], true, true
	}

	return stripped, "", false, true
}
