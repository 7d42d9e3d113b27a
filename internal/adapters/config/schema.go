package config

// optionsDTO mirrors the on-disk shape of the .recastrc file. The format
// is JWCC: strict JSON plus comments and trailing commas.
type optionsDTO struct {
	Target       string           `json:"target"`
	Env          *envDTO          `json:"env"`
	Module       string           `json:"module"`
	SourceMaps   string           `json:"sourceMaps"`
	BasePath     string           `json:"basePath"`
	Experimental *experimentalDTO `json:"experimental"`
	Coverage     *coverageDTO     `json:"coverage"`
}

type envDTO struct {
	Targets string `json:"targets"`
}

type experimentalDTO struct {
	Plugins []pluginDTO `json:"plugins"`
}

type pluginDTO struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options"`
}

type coverageDTO struct {
	Enabled            bool        `json:"enabled"`
	VarName            string      `json:"varName"`
	Compact            bool        `json:"compact"`
	ReportLogic        bool        `json:"reportLogic"`
	IgnoreClassMethods []string    `json:"ignoreClassMethods"`
	Logging            *loggingDTO `json:"logging"`
}

type loggingDTO struct {
	Level       string `json:"level"`
	EnableTrace bool   `json:"enableTrace"`
}
