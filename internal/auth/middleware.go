package auth

import (
	"net/http"

	"github.com/ferdiebergado/inflowkit/internal/pkg/message"
	"github.com/ferdiebergado/inflowkit/internal/pkg/security"
	"github.com/ferdiebergado/inflowkit/internal/pkg/web"
	"github.com/ferdiebergado/inflowkit/internal/platform/jwt"
)

// RequireToken guards a route with a bearer access token.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidUser, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidUser, nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
