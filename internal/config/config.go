// Package config loads portal credentials from a local JSON keyfile.
// I keep it lean: the keyfile is the only configuration these tools need
// beyond command-line flags.
package config

import "errors"

// ErrUnknownTarget is returned when the requested keyfile entry does not exist.
var ErrUnknownTarget = errors.New("unknown keyfile target")

// Credentials is one named entry in the keyfile. Key and secret are optional
// as a pair; without them requests go out unauthenticated.
type Credentials struct {
	Key    string `mapstructure:"key" validate:"required_with=Secret"`
	Secret string `mapstructure:"secret" validate:"required_with=Key"`
	Server string `mapstructure:"server" validate:"required,url"`
}

// Authenticated reports whether this entry carries a key pair.
func (c Credentials) Authenticated() bool {
	return c.Key != ""
}
