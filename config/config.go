package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/ripnet/builder"
	"github.com/katalvlaran/ripnet/core"
)

var (
	// ErrInvalidConfig indicates a configuration that fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a file extension Load cannot decode.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// validate is a singleton validator instance
var validate = validator.New()

// Config is the file representation of one generation job.
type Config struct {
	// Pairs is the number of pair attempts per topology.
	Pairs int `yaml:"pairs" toml:"pairs" validate:"gte=0"`
	// Seed fixes the RNG; nil draws one from the clock.
	Seed *int64 `yaml:"seed" toml:"seed"`
	// Roles is the role-label set; empty keeps the builder default.
	Roles []string `yaml:"roles" toml:"roles" validate:"omitempty,dive,oneof=core edge"`
	// Forbid lists role pairs that may not be linked, in either order.
	Forbid [][]string `yaml:"forbid" toml:"forbid" validate:"omitempty,dive,len=2,dive,oneof=core edge"`
	// Strict makes an edgeless topology an error.
	Strict bool `yaml:"strict" toml:"strict"`
	// AddressPrefix fixes leading address octets.
	AddressPrefix []int `yaml:"address_prefix" toml:"address_prefix" validate:"max=4,dive,gte=0,lte=255"`
	// Weight bounds edge weights; zero values keep the builder default.
	Weight WeightConfig `yaml:"weight" toml:"weight"`
	// MaxRoleDraws bounds the role-pair draw loop.
	MaxRoleDraws int `yaml:"max_role_draws" toml:"max_role_draws" validate:"gte=1"`
	// Batch is the number of topologies Generate produces.
	Batch int `yaml:"batch" toml:"batch" validate:"gte=1"`
	// Workers is the pool size Generate uses.
	Workers int `yaml:"workers" toml:"workers" validate:"gte=1"`
}

// WeightConfig bounds edge weights to [Min, Max]. Both zero means "default".
type WeightConfig struct {
	Min int `yaml:"min" toml:"min" validate:"omitempty,gte=1,lte=99"`
	Max int `yaml:"max" toml:"max" validate:"omitempty,gte=1,lte=99"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	return &Config{
		Pairs:        10,
		Roles:        []string{string(core.RoleCore), string(core.RoleEdge)},
		MaxRoleDraws: builder.DefaultMaxRoleDraws,
		Batch:        1,
		Workers:      builder.DefaultBatchWorkers,
	}
}

// Validate checks c against its struct tags.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	w := c.Weight
	if (w.Min == 0) != (w.Max == 0) {
		return fmt.Errorf("%w: Config.Weight: min and max must be set together", ErrInvalidConfig)
	}
	if w.Max < w.Min {
		return fmt.Errorf("%w: Config.Weight: max %d < min %d", ErrInvalidConfig, w.Max, w.Min)
	}

	return nil
}

// Options maps c to builder options. The result does not include a logger
// or a metrics registry; callers append those.
func (c *Config) Options() ([]builder.BuilderOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []builder.BuilderOption{builder.WithMaxRoleDraws(c.MaxRoleDraws)}
	if c.Seed != nil {
		opts = append(opts, builder.WithSeed(*c.Seed))
	}
	if len(c.Roles) > 0 {
		roles, err := parseRoles(c.Roles)
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithRoles(roles...))
	}
	if len(c.Forbid) > 0 {
		pairs := make([][2]core.Role, 0, len(c.Forbid))
		for _, p := range c.Forbid {
			rs, err := parseRoles(p)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, [2]core.Role{rs[0], rs[1]})
		}
		opts = append(opts, builder.WithConnectionPolicy(builder.ForbidPairs(pairs...)))
	}
	if c.Strict {
		opts = append(opts, builder.WithStrict())
	}
	if len(c.AddressPrefix) > 0 {
		opts = append(opts, builder.WithPrefixAddresses(c.AddressPrefix...))
	}
	if c.Weight.Min != 0 {
		opts = append(opts, builder.WithUniformWeight(c.Weight.Min, c.Weight.Max))
	}

	return opts, nil
}

// Generate runs the configured batch. extra options are applied after the
// configured ones, so they win on conflict.
func (c *Config) Generate(ctx context.Context, extra ...builder.BuilderOption) ([]*builder.NetworkGraph, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	return builder.GenerateBatch(ctx, c.Batch, c.Pairs, c.Workers, opts...)
}

func parseRoles(labels []string) ([]core.Role, error) {
	out := make([]core.Role, 0, len(labels))
	for _, l := range labels {
		r, err := core.ParseRole(l)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", builder.ErrOptionViolation, err)
		}
		out = append(out, r)
	}

	return out, nil
}

// formatValidationError reports the first failed rule in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	e := verrs[0]
	field, param := e.Namespace(), e.Param()
	switch e.Tag() {
	case "gte", "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, param)
	case "lte", "max":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, param)
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %v", ErrInvalidConfig, field, param, e.Value())
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
	}
}
