package service

import (
	"context"
	"fmt"

	"github.com/lukhatek/Fsociety/internal/models"
)

// GateService turns a bearer token into the current user.
type GateService struct {
	tokens   Tokens
	identity Identity
}

func NewGateService(tokens Tokens, identity Identity) *GateService {
	return &GateService{tokens: tokens, identity: identity}
}

// Resolve fails with ErrUnauthenticated for a bad token or a token naming an
// unknown user. Store errors are returned as they are.
func (s *GateService) Resolve(ctx context.Context, bearerToken string) (models.UserView, error) {
	username, err := s.tokens.Verify(bearerToken)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	u, err := s.identity.FindByUsername(ctx, username)
	if err != nil {
		return models.UserView{}, err
	}
	if u == nil {
		return models.UserView{}, fmt.Errorf("%w: user %q not found", ErrUnauthenticated, username)
	}
	return *u, nil
}
