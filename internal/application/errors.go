package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dispatch failure classes
var (
	ErrConfiguration  = errors.New("configuration error")
	ErrTargetNotFound = errors.New("target not found")
	ErrLaunch         = errors.New("launch failed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigurationError means the configured Vim binary is missing or unusable
type ConfigurationError struct {
	Path string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Vim executable not found at '%s'. Please set the correct path in the preferences.", e.Path)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// TargetNotFoundError means the file to open does not exist
type TargetNotFoundError struct {
	Path string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("File '%s' does not exist.", e.Path)
}

func (e *TargetNotFoundError) Is(target error) bool {
	return target == ErrTargetNotFound
}

// LaunchError wraps an OS failure to spawn the editor process
type LaunchError struct {
	Executable string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("Failed to open file in Vim: %v", e.Err)
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunch
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
