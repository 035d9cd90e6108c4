package product

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
)

// hsCodes maps well-known product names to their harmonized system codes.
var hsCodes = map[string]string{
	"mobile phone": "8517.12",
	"rice":         "1006.30",
	"electric car": "8703.80",
	"t-shirt":      "6109.10",
}

// LookupHSCode returns the HS code for a product name, matching
// case-insensitively.
func LookupHSCode(name string) (string, bool) {
	code, ok := hsCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

type HSCodeResponse struct {
	Product string `json:"product"`
	HSCode  string `json:"hs_code"`
}

func (h *Handler) HSCode(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("product")
	if name == "" {
		web.RespondBadRequest(w, errors.New("missing product query param"), "product required", nil)
		return
	}

	code, ok := LookupHSCode(name)
	if !ok {
		web.RespondNotFound(w, errors.New("unknown product"), "No HS code on record.", nil)
		return
	}

	web.RespondOK(w, nil, &HSCodeResponse{Product: name, HSCode: code})
}
