package session

import "context"

const pkg = "sessionHandler/"

type SessionCreator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type SessionDeleter interface {
	Logout(ctx context.Context, token string) error
}
