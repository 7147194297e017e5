package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig checks the struct tags and reports every failing field at once.
func ValidateConfig(cfg *Config) error {
	err := validator.New().Struct(cfg)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, fmt.Sprintf("%s failed %q (value: %v)", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}
