package domain

// CoveragePluginName is the fixed identifier of the coverage
// instrumentation plugin injected into the compiler's plugin list.
const CoveragePluginName = "coverage-instrument"

// InstrumentLogging configures the coverage plugin's own logging.
type InstrumentLogging struct {
	Level       string
	EnableTrace bool
}

// InstrumentConfig describes how source code should be instrumented for
// coverage collection. It is handed to the coverage plugin verbatim; this
// module never interprets the individual fields.
type InstrumentConfig struct {
	Enabled            bool
	VarName            string
	Compact            bool
	ReportLogic        bool
	IgnoreClassMethods []string
	Logging            InstrumentLogging
}

// PluginOptions converts the config into the options mapping the coverage
// plugin expects.
func (c *InstrumentConfig) PluginOptions() map[string]any {
	if c == nil {
		return map[string]any{}
	}
	opts := map[string]any{}
	if c.VarName != "" {
		opts["coverageVariable"] = c.VarName
	}
	if c.Compact {
		opts["compact"] = true
	}
	if c.ReportLogic {
		opts["reportLogic"] = true
	}
	if len(c.IgnoreClassMethods) > 0 {
		methods := make([]string, len(c.IgnoreClassMethods))
		copy(methods, c.IgnoreClassMethods)
		opts["ignoreClassMethods"] = methods
	}
	if c.Logging != (InstrumentLogging{}) {
		opts["instrumentLog"] = map[string]any{
			"level":       c.Logging.Level,
			"enableTrace": c.Logging.EnableTrace,
		}
	}
	return opts
}
