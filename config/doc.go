// Package config provides configuration loading and validation for
// applications embedding the authcrypt codecs.
//
// It uses Viper to load configuration from a config.yml file, a .env
// file, and environment variables, and exposes config-driven factories
// for the token codec and the secret hasher.
//
// # Usage
//
//	cfg, err := config.Load()
//	codec, err := cfg.Token.NewCodec()
//	hasher, err := cfg.Hash.NewHasher()
//
// Environment variables override file values using the AUTHCRYPT_
// prefix with underscore-separated paths (e.g.,
// AUTHCRYPT_TOKEN_SALT_LENGTH).
package config
