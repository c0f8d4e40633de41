package user

import "context"

const pkg = "userHandler/"

type UserAdder interface {
	Register(ctx context.Context, email, password, fullName, firmName string) (string, error)
}
