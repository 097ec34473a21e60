package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GoldeNerd2/Aicord/internal/jwt"
	"github.com/GoldeNerd2/Aicord/internal/store"
)

type UserIDKeyType struct{}

// UserVerifier checks the JWT cookie and that the token's user still exists
// in the store, then passes the user ID down via context.
func UserVerifier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jwtCookie, err := r.Cookie("JWT")
		if err != nil {
			sugar.Debug(err)
			switch {
			case errors.Is(err, http.ErrNoCookie):
				http.Error(w, "No jwt cookie was provided", http.StatusUnauthorized)
			default:
				http.Error(w, "Couldn't read jwt cookie", http.StatusInternalServerError)
			}
			return
		}

		userToken, err := jwt.VerifyToken(jwtCookie.Value)
		if err != nil {
			sugar.Debug(err)
			http.Error(w, "Couldn't verify JWT", http.StatusBadRequest)
			return
		}

		expired := time.Now().UTC().After(userToken.ExpiresAt.UTC())
		if expired {
			http.Error(w, "Login expired", http.StatusUnauthorized)
			return
		}

		if _, found := appStore.User(userToken.UserID); !found {
			// stale token for an identity this store never saw
			deleteJwtCookie := &http.Cookie{
				Name:     "JWT",
				Value:    "",
				Path:     "/",
				Expires:  time.Unix(0, 0),
				HttpOnly: true,
			}
			http.SetCookie(w, deleteJwtCookie)
			http.Error(w, "", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKeyType{}, userToken.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// storeError maps the store's typed errors onto status codes.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUnauthenticated):
		http.Error(w, "", http.StatusUnauthorized)
	case errors.Is(err, store.ErrInvalidCredentials):
		http.Error(w, "", http.StatusUnauthorized)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "", http.StatusNotFound)
	default:
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}
