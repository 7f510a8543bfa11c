package rangeropt

import (
	"errors"
	"fmt"
	"runtime"
)

// TreeType selects the forest variant to grow. Only TreeQuantile and
// TreeInstrumental can be requested through the command line; the remaining
// values are reserved for forests written by other frontends.
type TreeType int

const (
	TreeClassification TreeType = 1
	TreeRegression     TreeType = 3
	TreeSurvival       TreeType = 5
	TreeQuantile       TreeType = 11
	TreeInstrumental   TreeType = 15
)

// String returns the human-readable name of a TreeType
func (t TreeType) String() string {
	switch t {
	case TreeClassification:
		return "classification"
	case TreeRegression:
		return "regression"
	case TreeSurvival:
		return "survival"
	case TreeQuantile:
		return "quantile"
	case TreeInstrumental:
		return "instrumental"
	}

	return "unknown"
}

// Code returns the numeric tree type code as used on the command line
func (t TreeType) Code() int {
	return int(t)
}

const (
	// DefaultNumTrees is the number of trees grown when --ntree is not given
	DefaultNumTrees = 500
	// DefaultFraction is the sampling fraction used when --fraction is not given
	DefaultFraction = 1.0
)

// DefaultNumThreads returns the thread count used when --nthreads is not given
func DefaultNumThreads() int {
	return runtime.NumCPU()
}

// Config is the validated run configuration handed to the forest engine.
// It is mutable only while a parse is in flight; a successful Parse returns
// it frozen and the engine receives it by value or read-only reference.
//
// String fields use the empty string as the unset sentinel. An explicitly
// supplied empty value is therefore indistinguishable from an omitted
// option, which mirrors the behavior of the original tool.
type Config struct {
	// File is the input data file to train on (or to predict for)
	File string
	// DepVarName is the name of the dependent variable. For survival trees
	// this is the time variable.
	DepVarName string
	// StatusVarName names the status variable (survival and instrumental trees)
	StatusVarName string
	// InstrumentVarName names the instrument variable (instrumental trees)
	InstrumentVarName string
	// CaseWeights is the case weights file
	CaseWeights string
	// SplitWeights is the split select weights file
	SplitWeights string
	// AlwaysSplitVars lists variables always considered for splitting
	AlwaysSplitVars []string
	// CatVars lists unordered categorical variables
	CatVars []string

	// NumTrees is the number of trees to grow
	NumTrees int
	// Mtry is the number of candidate variables per split, 0 meaning the
	// engine picks its own default
	Mtry int
	// TargetPartitionSize is the minimal node size, 0 meaning the engine
	// picks its own default
	TargetPartitionSize int
	// Fraction of observations to sample per tree, in (0,1]
	Fraction float64
	// Replace samples with replacement when true
	Replace bool
	// Seed for the random generator, 0 meaning unseeded
	Seed int
	// SaveMemory enables the memory saving (but slower) splitting mode
	SaveMemory bool

	// TreeType selects the forest variant
	TreeType TreeType
	// Quantiles to predict when growing a quantile forest, each in (0,1)
	Quantiles []float64
	// PredictAll returns per-tree instead of aggregated predictions
	PredictAll bool

	// Predict is a saved forest file to load for prediction. When set the
	// run predicts instead of training and DepVarName is not required.
	Predict string
	// Write saves the trained forest to file
	Write bool

	// NumThreads is the number of parallel threads to use
	NumThreads int
	// Verbose turns on verbose output
	Verbose bool
}

// Predicting reports whether the configuration loads a saved forest instead
// of training a new one
func (c *Config) Predicting() bool {
	return c.Predict != ""
}

func defaultConfig() *Config {
	return &Config{
		NumTrees:   DefaultNumTrees,
		Fraction:   DefaultFraction,
		Replace:    true,
		TreeType:   TreeQuantile,
		NumThreads: DefaultNumThreads(),
	}
}

// InfoRequest marks a parse which was cut short by an informational flag.
// It is an outcome, not an error: the caller renders the requested text and
// exits without a configuration.
type InfoRequest int

const (
	// NoInfoRequest denotes a parse which ran to completion
	NoInfoRequest InfoRequest = iota
	// HelpRequested denotes a parse cut short by --help
	HelpRequested
	// VersionRequested denotes a parse cut short by --version
	VersionRequested
)

// Result is the outcome of a successful parse. Exactly one of Config or a
// non-zero Info is set.
type Result struct {
	// Config is the frozen configuration, nil when Info is set
	Config *Config
	// Leftovers holds arguments which matched no option. They are reported,
	// never fatal.
	Leftovers []string
	// Info is non-zero when --help or --version cut the parse short
	Info InfoRequest
}

var (
	ErrMissingValue  = errors.New("missing value")
	ErrInvalidValue  = errors.New("invalid value")
	ErrConfiguration = errors.New("invalid configuration")
)

// MissingValueError reports a value-taking option with no value token
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option '--%s' requires a value. See '--help' for details.", e.Option)
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}

// InvalidValueError reports a value which failed coercion or a range check
type InvalidValueError struct {
	Option string
	Raw    string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("illegal value '%s' for option '--%s'. Please give %s. See '--help' for details.",
		e.Raw, e.Option, e.Reason)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

// ConfigurationError reports a cross-field rule violated after an otherwise
// successful scan
type ConfigurationError struct {
	Option string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return e.Detail
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
