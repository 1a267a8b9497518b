package jwt

import (
	"time"

	"premium_motors/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// NewToken issues a signed HS256 access token carrying the user identity and
// role. The role claim is what the admin middleware checks for OPERATOR vs
// ADMIN routes.
func NewToken(user models.User, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID
	claims["email"] = user.Email
	claims["role"] = string(user.Role)
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
