package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/ferdiebergado/inflowkit/internal/pkg/message"
	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
)

// CheckContentType rejects request bodies that are not JSON. It is mounted on
// routes that decode a JSON payload, not globally, so uploads and GETs pass.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
