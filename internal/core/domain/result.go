package domain

// TransformResult is the output of one transform call. Map is empty when
// the source map is inlined or disabled.
type TransformResult struct {
	Code string `json:"code"`
	Map  string `json:"map,omitzero"`
}
