package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	appIssuer = "github.com/JJK801/joiql/example/library"
	appSecret = "joiql-is-easy" // TODO get this from a secret store

	userIDClaim = "jti"
	expiryClaim = "exp"
	issuerClaim = "iss"
)

// ctxKey is the private type for context keys set by this middleware.
type ctxKey string

// userKey is the context key under which the authenticated user name is stored.
const userKey ctxKey = "user"

type authHandler struct {
	inner http.Handler
}

// ServeHTTP gets the user name from the JWT token in the HTTP Authorization
// header and adds it to the request context so resolvers can check that the
// request is authorised.
func (h *authHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.inner.ServeHTTP(w, func(r *http.Request) *http.Request {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return r // no auth hdr
		}
		token, err := jwt.Parse(authHeader[len("Bearer "):], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(appSecret), nil
		})
		if err != nil || !token.Valid {
			return r // token invalid
		}
		user := token.Claims.(jwt.MapClaims)[userIDClaim]
		if user == nil {
			return r // no user
		}
		return r.WithContext(context.WithValue(r.Context(), userKey, user))
	}(r))
}

// getToken returns a JWT token for the given user. The JWT indicates what user
// is logged in and is used to authorise requests.
func getToken(user string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		userIDClaim: user,
		expiryClaim: time.Now().Add(time.Hour * 24).Unix(),
		issuerClaim: appIssuer,
	})
	return token.SignedString([]byte(appSecret))
}
