// Package yamlutil isolates the YAML dependency behind the one operation
// the generator needs: a strict decode of a small config document.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds config input; site configs are a handful of fields,
// so anything past 64KB is rejected rather than decoded.
const MaxInputSize = 64 << 10

var (
	ErrNoInput       = errors.New("yamlutil: no input")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeStrict unmarshals data into target, rejecting unknown fields so a
// typo in a config key surfaces as an error instead of a silently ignored
// setting. Decoding onto a pre-populated target leaves absent fields at
// their existing values.
func DecodeStrict(data []byte, target any) error {
	if len(data) == 0 {
		return ErrNoInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if target == nil {
		return ErrNilTarget
	}

	if err := yaml.UnmarshalWithOptions(data, target, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
