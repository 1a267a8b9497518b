package http

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errNoIdentity = errors.New("no authenticated identity in context")

// authenticatedUserID pulls the uid claim from the verified JWT that the
// echo-jwt middleware stored in the context.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errNoIdentity
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return uuid.Nil, errNoIdentity
	}

	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil, errNoIdentity
	}

	return id, nil
}
