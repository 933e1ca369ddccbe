package setup

import "fmt"

type ConfigValueMissingError struct {
	Value string
}

func (e ConfigValueMissingError) Error() string {
	return fmt.Sprintf("config value %q not set", e.Value)
}

func NewConfigValueMissingError(v string) *ConfigValueMissingError {
	return &ConfigValueMissingError{
		Value: v,
	}
}
