// Package country looks up country metadata from the REST Countries API.
package country

// Info is the subset of country metadata surfaced to clients.
type Info struct {
	Name       string `json:"name,omitempty"`
	Region     string `json:"region,omitempty"`
	Population int64  `json:"population,omitempty"`
	Capital    string `json:"capital,omitempty"`
	Currencies string `json:"currencies,omitempty"`
	FlagPNG    string `json:"flag_png,omitempty"`
	CCA2       string `json:"cca2,omitempty"`
}
