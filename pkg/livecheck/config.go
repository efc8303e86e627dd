package livecheck

import (
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// DefaultDelay is the quiet period after the last keystroke before a field is evaluated.
const DefaultDelay = 500 * time.Millisecond

type Config struct {
	Debounce         time.Duration `env:"FIELDCHECK_DEBOUNCE" envDefault:"500ms"`                         // Debounce is the quiet period for input events.
	NationalIDFields []string      `env:"FIELDCHECK_NATIONAL_ID_FIELDS" envDefault:"nif" envSeparator:","`     // NationalIDFields are the ids of DNI/NIE inputs.
	PlateFields      []string      `env:"FIELDCHECK_PLATE_FIELDS" envDefault:"matricula" envSeparator:","` // PlateFields are the ids of plate inputs.
}

// Classifier builds the field classifier described by the config.
func (c Config) Classifier() field.Classifier {
	return field.Classifier{
		NationalIDFields: c.NationalIDFields,
		PlateFields:      c.PlateFields,
	}
}

// NewFromConfig creates a Coordinator from the provided Config.
// Only non-zero values from the config are applied; opts run afterwards.
func NewFromConfig(cfg Config, opts ...Option) *Coordinator {
	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.Debounce > 0 {
		configOpts = append(configOpts, WithDelay(cfg.Debounce))
	}
	configOpts = append(configOpts, WithClassifier(cfg.Classifier()))
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
