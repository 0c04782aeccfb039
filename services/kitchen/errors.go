package kitchen

import "fmt"

// ConfigError reports an invalid slot or kitchen configuration submitted by
// an admin.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConfigError(msg string) error {
	return &ConfigError{
		Code:    "configError",
		Message: msg,
	}
}
