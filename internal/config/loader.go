package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadKeyfile reads the JSON keyfile at path and returns the entry named by
// target. Any problem here is a fatal startup error for the caller: an
// unreadable or malformed keyfile, a missing entry, or an entry that fails
// validation.
func LoadKeyfile(path, target string) (Credentials, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return Credentials{}, fmt.Errorf("keyfile %s not readable: %w", path, err)
	}
	if !v.IsSet(target) {
		return Credentials{}, fmt.Errorf("%w: %q in %s", ErrUnknownTarget, target, path)
	}

	var creds Credentials
	if err := v.UnmarshalKey(target, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to unmarshal keyfile entry %q: %w", target, err)
	}
	if err := validator.New().Struct(creds); err != nil {
		return Credentials{}, fmt.Errorf("keyfile entry %q is invalid: %w", target, err)
	}
	return creds, nil
}
