package config

import (
	"fmt"

	"github.com/kbukum/authcrypt/kdf"
	"github.com/kbukum/authcrypt/logger"
	"github.com/kbukum/authcrypt/secrethash"
	"github.com/kbukum/authcrypt/token"
)

// Config is the root configuration for applications embedding the
// authcrypt codecs.
type Config struct {
	Token   TokenConfig   `yaml:"token" mapstructure:"token"`
	Hash    HashConfig    `yaml:"hash" mapstructure:"hash"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to zero-valued fields.
func (c *Config) ApplyDefaults() {
	c.Token.ApplyDefaults()
	c.Hash.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Token.Validate(); err != nil {
		return fmt.Errorf("config.token: %w", err)
	}
	if err := c.Hash.Validate(); err != nil {
		return fmt.Errorf("config.hash: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// TokenConfig configures the token codec.
// Loadable from YAML/env via mapstructure tags.
type TokenConfig struct {
	// SaltLength is the trailing salt length in bytes (default: 16,
	// minimum: 16). Every token issued by a deployment must use the
	// same value.
	SaltLength int `yaml:"salt_length" mapstructure:"salt_length"`

	// Iterations is the key-derivation iteration count (default:
	// 10000). Changing it invalidates previously issued tokens.
	Iterations int `yaml:"iterations" mapstructure:"iterations"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *TokenConfig) ApplyDefaults() {
	if c.SaltLength == 0 {
		c.SaltLength = token.DefaultSaltLength
	}
	if c.Iterations == 0 {
		c.Iterations = kdf.DefaultIterations
	}
}

// Validate checks the configuration.
func (c *TokenConfig) Validate() error {
	if c.SaltLength < kdf.MinSaltLength {
		return fmt.Errorf("salt_length must be at least %d (got: %d)", kdf.MinSaltLength, c.SaltLength)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive (got: %d)", c.Iterations)
	}
	return nil
}

// NewCodec creates a token codec from configuration.
// This is the config-driven factory; use it when loading from YAML/env.
func (c TokenConfig) NewCodec() (*token.Codec, error) {
	c.ApplyDefaults()
	return token.New(
		token.WithSaltLength(c.SaltLength),
		token.WithIterations(c.Iterations),
	)
}

// HashConfig configures the salted secret-hash codec.
type HashConfig struct {
	// Algorithm selects the digest algorithm (default: "secure256";
	// "fast128" exists only for legacy credential stores).
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm"`

	// SaltLength is the leading salt length in bytes (default: 16,
	// minimum: 16).
	SaltLength int `yaml:"salt_length" mapstructure:"salt_length"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *HashConfig) ApplyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = string(secrethash.AlgorithmSecure256)
	}
	if c.SaltLength == 0 {
		c.SaltLength = secrethash.MinSaltLength
	}
}

// Validate checks the configuration.
func (c *HashConfig) Validate() error {
	switch secrethash.Algorithm(c.Algorithm) {
	case secrethash.AlgorithmFast128, secrethash.AlgorithmSecure256:
	default:
		return fmt.Errorf("unsupported algorithm: %s (use fast128 or secure256)", c.Algorithm)
	}
	if c.SaltLength < secrethash.MinSaltLength {
		return fmt.Errorf("salt_length must be at least %d (got: %d)", secrethash.MinSaltLength, c.SaltLength)
	}
	return nil
}

// NewHasher creates a secret hasher from configuration.
func (c HashConfig) NewHasher() (*secrethash.Hasher, error) {
	c.ApplyDefaults()
	return secrethash.New(
		secrethash.Algorithm(c.Algorithm),
		secrethash.WithSaltLength(c.SaltLength),
	)
}
