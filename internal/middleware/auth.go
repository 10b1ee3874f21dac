package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	jwt_internal "github.com/komachi-dev/komachi/internal/jwt"
	"github.com/komachi-dev/komachi/internal/utils"
)

// AdminOnly guards the provisioning endpoints. Tokens are bearer JWTs
// minted by the generate-admin-token tool; there are no user accounts.
func AdminOnly(jwtService jwt_internal.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenStr == "" {
				http.Error(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			token, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}
			if isAdmin, ok := claims["admin"].(bool); !ok || !isAdmin {
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
