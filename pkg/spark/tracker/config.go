package tracker

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// MaxPages is the largest number of steps a configured tracker may have.
const MaxPages = 64

// Config is the file representation of a tracker.
type Config struct {
	Pages       int      `toml:"pages" yaml:"pages" validate:"required,min=1,max=64"`
	CurrentPage int      `toml:"current_page" yaml:"current_page" validate:"min=0,ltfield=Pages"`
	Policy      string   `toml:"policy" yaml:"policy" validate:"omitempty,policy"`
	Orientation string   `toml:"orientation" yaml:"orientation" validate:"omitempty,orientation"`
	Disabled    bool     `toml:"disabled" yaml:"disabled"`
	Labels      []string `toml:"labels" yaml:"labels" validate:"omitempty,dive,max=64"`
	Spacing     float64  `toml:"spacing" yaml:"spacing" validate:"min=0"`
	Locale      string   `toml:"locale" yaml:"locale" validate:"omitempty,locale"`
}

// DefaultConfig returns a five step discrete tracker.
func DefaultConfig() Config {
	return Config{
		Pages:       5,
		Policy:      PolicyDiscrete.String(),
		Orientation: OrientationHorizontal.String(),
		Spacing:     8,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
			_, err := ParsePolicy(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("orientation", func(fl validator.FieldLevel) bool {
			_, err := ParseOrientation(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// LoadConfig reads a tracker config from a .toml, .yaml or .yml file,
// applies defaults for omitted fields and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tracker config: read %s: %w", path, err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes data in the format named by ext (".toml", ".yaml" or
// ".yml") and validates the result.
func ParseConfig(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return nil, &ValidationError{Field: "config", Message: "invalid TOML", Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ValidationError{Field: "config", Message: "invalid YAML", Err: err}
		}
	default:
		return nil, &ValidationError{Field: "config", Message: fmt.Sprintf("unsupported file extension %q", ext)}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs schema and cross-field validation.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if len(c.Labels) > c.Pages {
		return &ValidationError{
			Field:   "labels",
			Message: fmt.Sprintf("%d labels for %d pages", len(c.Labels), c.Pages),
		}
	}
	return nil
}

// Settings converts the config into controller settings. The config is
// assumed valid; unparsable names fall back to the defaults.
func (c *Config) Settings() Settings {
	policy, err := ParsePolicy(c.Policy)
	if err != nil {
		policy = PolicyDiscrete
	}
	orientation, _ := ParseOrientation(c.Orientation)

	return Settings{
		NumberOfPages: c.Pages,
		CurrentPage:   c.CurrentPage,
		Policy:        policy,
		Orientation:   orientation,
		Disabled:      c.Disabled,
		Labels:        append([]string(nil), c.Labels...),
	}
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ValidationError{Field: "config", Message: "validation failed", Err: err}
	}

	fe := ves[0]
	return &ValidationError{
		Field:   configFieldName(fe),
		Message: validationMessage(fe),
		Err:     err,
	}
}

var configFieldNames = map[string]string{
	"Pages":       "pages",
	"CurrentPage": "current_page",
	"Policy":      "policy",
	"Orientation": "orientation",
	"Labels":      "labels",
	"Spacing":     "spacing",
	"Locale":      "locale",
}

func configFieldName(fe validator.FieldError) string {
	field := fe.StructField()
	if idx := strings.Index(field, "["); idx > 0 {
		if name, ok := configFieldNames[field[:idx]]; ok {
			return name + field[idx:]
		}
	}
	if name, ok := configFieldNames[field]; ok {
		return name
	}
	return strings.ToLower(field)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "ltfield":
		return "must be lower than pages"
	case "policy":
		return fmt.Sprintf("unknown policy %q", fe.Value())
	case "orientation":
		return fmt.Sprintf("unknown orientation %q", fe.Value())
	case "locale":
		return fmt.Sprintf("invalid language tag %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
