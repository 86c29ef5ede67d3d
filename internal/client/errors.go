package client

import "errors"

var (
	ErrNoClientServices = errors.New("client services are not initialised")
	ErrNoUI             = errors.New("client ui is not initialised")
)
