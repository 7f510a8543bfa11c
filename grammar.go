package rangeropt

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// arity describes whether an option consumes a value token
type arity int

const (
	arityFlag arity = iota
	arityValue
)

// option is one entry of the grammar: a long name, an optional one-letter
// alias, the arity, usage metadata and the coercer feeding the Config field.
// Repeated occurrences always replace the previous value, for list-valued
// options the whole list is replaced.
type option struct {
	long    string
	short   string
	arity   arity
	metavar string
	help    string
	set     func(*Config, string) error
	info    InfoRequest
}

// newGrammar builds the option table in the order options are documented.
// The order is significant only for usage rendering and environment lookup;
// matching is by name.
func newGrammar() *orderedmap.OrderedMap {
	g := orderedmap.New()
	for _, opt := range []*option{
		{long: "help", short: "h", arity: arityFlag, info: HelpRequested,
			help: "Print this help."},
		{long: "version", short: "Z", arity: arityFlag, info: VersionRequested,
			help: "Print version and citation information."},
		{long: "verbose", short: "v", arity: arityFlag,
			set:  func(c *Config, _ string) error { c.Verbose = true; return nil },
			help: "Turn on verbose mode."},
		{long: "file", short: "f", arity: arityValue, metavar: "FILE",
			set:  func(c *Config, raw string) error { c.File = raw; return nil },
			help: "Filename of input data. Only numerical values are supported."},
		{long: "treetype", short: "y", arity: arityValue, metavar: "TYPE",
			set: coerceTreeType,
			help: "Set tree type to:\n" +
				"TYPE = 11: Quantile.\n" +
				"TYPE = 15: Instrumental.\n" +
				"(Default: 11)"},
		{long: "quantiles", arity: arityValue, metavar: "Q1,Q2,..",
			set: coerceQuantiles,
			help: "The quantiles to predict when running a quantile forest (--treetype 11). " +
				"Note that all quantiles must lie in the range (0, 1)."},
		{long: "depvarname", short: "D", arity: arityValue, metavar: "NAME",
			set:  func(c *Config, raw string) error { c.DepVarName = raw; return nil },
			help: "Name of dependent variable. For survival trees this is the time variable."},
		{long: "statusvarname", short: "s", arity: arityValue, metavar: "NAME",
			set: func(c *Config, raw string) error { c.StatusVarName = raw; return nil },
			help: "Name of status variable, only applicable for survival and instrumental trees. " +
				"Coding is 1 for event and 0 for censored."},
		{long: "instrumentvarname", short: "i", arity: arityValue, metavar: "NAME",
			set:  func(c *Config, raw string) error { c.InstrumentVarName = raw; return nil },
			help: "Name of instrument variable, only applicable for instrumental trees."},
		{long: "ntree", short: "t", arity: arityValue, metavar: "N",
			set:  func(c *Config, raw string) error { return coercePositiveInt("ntree", raw, &c.NumTrees) },
			help: "Set number of trees to N.\n(Default: 500)"},
		{long: "mtry", short: "m", arity: arityValue, metavar: "N",
			set: func(c *Config, raw string) error { return coercePositiveInt("mtry", raw, &c.Mtry) },
			help: "Number of variables to possibly split at in each node.\n" +
				"(Default: sqrt(p) for Classification and Survival, p/3 for Regression. " +
				"p = number of independent variables)"},
		{long: "targetpartitionsize", short: "l", arity: arityValue, metavar: "N",
			set: func(c *Config, raw string) error {
				return coercePositiveInt("targetpartitionsize", raw, &c.TargetPartitionSize)
			},
			help: "Set minimal node size to N.\n" +
				"(Default: 1 for Classification, 5 for Regression, and 3 for Survival)"},
		{long: "catvars", short: "a", arity: arityValue, metavar: "V1,V2,..",
			set: func(c *Config, raw string) error { c.CatVars = splitList(raw); return nil },
			help: "Comma separated list of names of (unordered) categorical variables. " +
				"Categorical variables must contain only positive integer values."},
		{long: "write", short: "w", arity: arityFlag,
			set:  func(c *Config, _ string) error { c.Write = true; return nil },
			help: "Save forest to file."},
		{long: "predict", short: "P", arity: arityValue, metavar: "FILE",
			set:  func(c *Config, raw string) error { c.Predict = raw; return nil },
			help: "Load forest from FILE and predict with new data."},
		{long: "predall", short: "X", arity: arityFlag,
			set: func(c *Config, _ string) error { c.PredictAll = true; return nil },
			help: "Return a matrix with individual predictions for each tree instead of " +
				"aggregated predictions for all trees (classification and regression only)."},
		{long: "noreplace", short: "u", arity: arityFlag,
			set:  func(c *Config, _ string) error { c.Replace = false; return nil },
			help: "Sample without replacement."},
		{long: "fraction", short: "F", arity: arityValue, metavar: "X",
			set: coerceFraction,
			help: "Fraction of observations to sample. Default is 1 for sampling with " +
				"replacement and 0.632 for sampling without replacement."},
		{long: "caseweights", short: "C", arity: arityValue, metavar: "FILE",
			set:  func(c *Config, raw string) error { c.CaseWeights = raw; return nil },
			help: "Filename of case weights file."},
		{long: "splitweights", short: "S", arity: arityValue, metavar: "FILE",
			set:  func(c *Config, raw string) error { c.SplitWeights = raw; return nil },
			help: "Filename of split select weights file."},
		{long: "alwayssplitvars", short: "A", arity: arityValue, metavar: "V1,V2,..",
			set:  func(c *Config, raw string) error { c.AlwaysSplitVars = splitList(raw); return nil },
			help: "Comma separated list of variable names to be always considered for splitting."},
		{long: "nthreads", short: "U", arity: arityValue, metavar: "N",
			set:  func(c *Config, raw string) error { return coercePositiveInt("nthreads", raw, &c.NumThreads) },
			help: "Set number of parallel threads to N.\n(Default: Number of CPUs available)"},
		{long: "seed", short: "z", arity: arityValue, metavar: "SEED",
			set:  func(c *Config, raw string) error { return coerceNonNegativeInt("seed", raw, &c.Seed) },
			help: "Set random seed to SEED.\n(Default: No seed)"},
		{long: "savemem", short: "N", arity: arityFlag,
			set:  func(c *Config, _ string) error { c.SaveMemory = true; return nil },
			help: "Use memory saving (but slower) splitting mode."},
	} {
		g.Set(opt.long, opt)
	}

	return g
}

// shortLookup maps one-letter aliases to long names. Aliases are unique,
// a duplicate would silently shadow and is caught by the grammar tests.
func shortLookup(grammar *orderedmap.OrderedMap) map[string]string {
	lookup := make(map[string]string, grammar.Len())
	for pair := grammar.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(*option)
		if opt.short != "" {
			lookup[opt.short] = opt.long
		}
	}

	return lookup
}
