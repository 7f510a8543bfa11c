package rangeropt

// checkConfig runs the cross-field rules, in order, stopping at the first
// violation. It runs exactly once per parse, after the scan, and never when
// the scan ended informationally.
func checkConfig(c *Config) error {
	if c.File == "" {
		return &ConfigurationError{Option: "file",
			Detail: "please specify an input file with '--file'. See '--help' for details."}
	}

	if !c.Predicting() && c.DepVarName == "" {
		return &ConfigurationError{Option: "depvarname",
			Detail: "please specify a dependent variable name with '--depvarname'. See '--help' for details."}
	}

	if c.TreeType == TreeInstrumental && c.InstrumentVarName == "" {
		return &ConfigurationError{Option: "instrumentvarname",
			Detail: "instrumental trees require an instrument variable, please specify one with '--instrumentvarname'. See '--help' for details."}
	}

	if c.TreeType == TreeInstrumental && c.StatusVarName == "" {
		return &ConfigurationError{Option: "statusvarname",
			Detail: "instrumental trees require a treatment variable, please specify one with '--statusvarname'. See '--help' for details."}
	}

	if len(c.AlwaysSplitVars) > 0 && c.SplitWeights != "" {
		return &ConfigurationError{Option: "alwayssplitvars",
			Detail: "please use only one of '--splitweights' and '--alwayssplitvars'."}
	}

	return nil
}
