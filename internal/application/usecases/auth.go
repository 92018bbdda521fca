package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ishehara/autosched-admin/internal/domain/user"
	"github.com/ishehara/autosched-admin/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

// AuthService validates console sign-ins against the local user store. The
// credential check is a real server-side exchange: the browser only ever sees
// the session cookie that comes back.
type AuthService struct {
	Users *postgres.UserRepo
}

func (a AuthService) VerifyPassword(ctx context.Context, username, password string) (user.User, error) {
	u, err := a.Users.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return user.User{}, fmt.Errorf("invalid credentials")
	}
	return u, nil
}

func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func NewUser(username, password string) (user.User, error) {
	h, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	return user.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: h,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
