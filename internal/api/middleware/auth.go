package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GraemeWada/signoutapp/internal/api/handler/v1/response"
	"github.com/GraemeWada/signoutapp/internal/pkg/jwthelper"
)

const ContextKeyUsername = "username"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT guards the admin surface. It expects a Bearer token minted
// by the login endpoint and rejects tokens presented from a different
// user agent than they were issued to.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.AbortWithErr(ctx, response.ErrUnauthorized(errors.New("missing bearer token")))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.AbortWithErr(ctx, response.ErrUnauthorized(err))

			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			response.AbortWithErr(ctx, response.ErrUnauthorized(errors.New("token user agent mismatch")))

			return
		}

		ctx.Set(ContextKeyUsername, claims.Username)
		ctx.Next()
	}
}
