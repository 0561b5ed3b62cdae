package gerr

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrClaimNotFound  = errors.New("claim not found")
	ErrMasterNotFound = errors.New("master item not found")

	ErrUsernameTaken = errors.New("username already taken")
)
