package validator

import "net/mail"

const minPasswordLen = 8

func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}

	_, err := mail.ParseAddress(email)

	return err == nil
}

func IsValidPassword(password string) bool {
	return len(password) >= minPasswordLen
}
