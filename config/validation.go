package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateConfig checks struct-level rules, then the requirements that depend
// on the selected driver and environment.
func ValidateConfig(cfg *Config) error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			problems = append(problems, ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q rule (value %v)", fe.Tag(), fe.Value()),
			}.Error())
		}
	}

	if cfg.DBDriver == "sqlite" && cfg.DBPath == "" {
		problems = append(problems, ValidationError{Field: "DB_PATH", Message: "required for sqlite driver"}.Error())
	}

	if cfg.DBDriver == "postgres" {
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				problems = append(problems, ValidationError{Field: field, Message: "required for postgres driver"}.Error())
			}
		}
		if cfg.DBPassword == "" && (cfg.Env == Production || cfg.Env == CI) {
			problems = append(problems, ValidationError{
				Field:   "DB_PASSWORD",
				Message: fmt.Sprintf("required in %s environment", cfg.Env),
			}.Error())
		}
	}

	if cfg.DBMaxIdleConns > cfg.DBMaxOpenConns {
		problems = append(problems, ValidationError{Field: "DB_MAX_IDLE_CONNS", Message: "must not exceed DB_MAX_OPEN_CONNS"}.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(problems, "\n"))
	}

	return nil
}
