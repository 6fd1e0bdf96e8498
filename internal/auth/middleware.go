package auth

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	apierrors "estudiodanza/internal/errors"
)

type contextKey string

const adminUIDKey contextKey = "adminUID"

// TokenVerifier checks a Firebase ID token. *auth.Client implements it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// AdminAuthMiddleware requires a valid Firebase ID token in the Authorization
// header. Identity lives in Firebase Authentication; this layer only verifies
// the token presented by the admin panel.
func AdminAuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				httpErr := apierrors.ErrUnauthorized("No autorizado")
				http.Error(w, httpErr.Message, httpErr.Code)
				return
			}
			token, err := verifier.VerifyIDToken(r.Context(), strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				httpErr := apierrors.ErrUnauthorized("No autorizado")
				http.Error(w, httpErr.Message, httpErr.Code)
				return
			}
			ctx := context.WithValue(r.Context(), adminUIDKey, token.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminUID returns the UID of the authenticated admin, or "" outside the
// admin routes.
func AdminUID(ctx context.Context) string {
	uid, _ := ctx.Value(adminUIDKey).(string)
	return uid
}
