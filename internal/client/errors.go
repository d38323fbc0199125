package client

import "errors"

var ErrNoClientConfig = errors.New("client config is not provided")
