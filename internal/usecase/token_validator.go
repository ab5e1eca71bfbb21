package usecase

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the member it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type claimsVerifier interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidator struct {
	verifier claimsVerifier
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return tokenValidator{verifier: jwtService}
}

// Rejections are marked ErrRenterNotAuthenticated; the jwt sentinel stays
// reachable for logging.
func (v tokenValidator) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := v.verifier.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrRenterNotAuthenticated)
	}
	return claims.MemberID()
}
