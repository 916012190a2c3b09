package proptypes

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/propcheck/pkg/logger"
)

// ElementPolicy decides how many failing array elements arrayOf reports.
type ElementPolicy int

const (
	// FirstFailure reports only the first failing element, then the summary.
	FirstFailure ElementPolicy = iota
	// AllFailures reports every failing element, then the summary.
	AllFailures
)

func (p ElementPolicy) String() string {
	switch p {
	case FirstFailure:
		return "first"
	case AllFailures:
		return "all"
	default:
		return fmt.Sprintf("ElementPolicy(%d)", int(p))
	}
}

// ParseElementPolicy maps "first" and "all" to an ElementPolicy.
func ParseElementPolicy(s string) (ElementPolicy, error) {
	switch s {
	case "first", "":
		return FirstFailure, nil
	case "all":
		return AllFailures, nil
	default:
		return FirstFailure, fmt.Errorf("%w: element policy %q", ErrInvalidConfig, s)
	}
}

// Validator walks descriptor trees and collects violations.
// A Validator holds no per-call state and may be shared across goroutines
// once its registry is no longer being modified.
type Validator struct {
	registry *Registry
	sep      string
	policy   ElementPolicy
	log      *slog.Logger

	// pending collects faults instead of logging them while oneOfType
	// alternatives are tried.
	pending *[][]any
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry sets the registry used for type dispatch.
// Nil registries are ignored.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithKeySeparator sets the string placed between a path and a shape key.
func WithKeySeparator(sep string) Option {
	return func(v *Validator) {
		if sep != "" {
			v.sep = sep
		}
	}
}

// WithElementPolicy sets how many failing arrayOf elements are reported.
func WithElementPolicy(p ElementPolicy) Option {
	return func(v *Validator) { v.policy = p }
}

// WithLogger sets the logger used to report validator faults.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// New creates a Validator. Without WithRegistry it gets its own registry
// seeded with the built-in types.
func New(opts ...Option) *Validator {
	v := &Validator{
		sep:    DefaultKeySeparator,
		policy: FirstFailure,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = NewRegistry()
	}
	if v.log != nil {
		v.log = v.log.With(logger.Component("proptypes"))
	}
	return v
}

// Registry returns the registry the validator dispatches through.
func (v *Validator) Registry() *Registry { return v.registry }

// Policy returns the arrayOf element policy.
func (v *Validator) Policy() ElementPolicy { return v.policy }

// Validate checks value against d for the top-level property name.
func (v *Validator) Validate(value any, d *Descriptor, property string) ValidationErrors {
	return v.Check(value, d, Root(property).WithSeparator(v.sep))
}

// Check validates value against d at path p. Absent values (nil, nil
// pointers) yield a single missing-property violation when d is required and
// nothing otherwise. Null is present and goes through type dispatch.
// TypeFuncs call Check to recurse into nested descriptors.
func (v *Validator) Check(value any, d *Descriptor, p Path) (errs ValidationErrors) {
	if d == nil {
		return ValidationErrors{v.fault(p, "", "descriptor is nil")}
	}

	if isAbsent(value) {
		if d.required {
			return ValidationErrors{missingRequired(p)}
		}
		return nil
	}

	fn, ok := v.registry.Lookup(d.tag)
	if !ok {
		return ValidationErrors{v.fault(p, d.tag, fmt.Sprintf("unknown type %q", d.tag))}
	}

	defer func() {
		if r := recover(); r != nil {
			reason := fmt.Sprintf("validator for type %s failed: %v", d.tag, r)
			attr := logger.Panic(r)
			if err, ok := r.(error); ok {
				attr = logger.Error(err)
			}
			errs = ValidationErrors{v.fault(p, d.tag, reason, attr)}
		}
	}()

	return fn(v, value, d, p)
}

// ValidateProps validates every property declared by s against values,
// in declaration order. A missing key is absent, a key set to nil is Null.
// Keys of values that s does not declare are ignored.
func (v *Validator) ValidateProps(values map[string]any, s *Schema) ValidationErrors {
	if s == nil {
		return nil
	}
	var errs ValidationErrors
	for _, prop := range s.props {
		errs = append(errs, v.Validate(propValue(values, prop.Name), prop.Descriptor, prop.Name)...)
	}
	return errs
}

// fault logs a ValidatorFault and converts it into a violation.
func (v *Validator) fault(p Path, tag Type, reason string, attrs ...slog.Attr) ValidationError {
	args := []any{
		logger.Path(p.String()),
		logger.TypeTag(string(tag)),
		slog.String("reason", reason),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	v.logFault(args)
	return validatorFault(p, tag, reason)
}

func (v *Validator) logFault(args []any) {
	if v.pending != nil {
		*v.pending = append(*v.pending, args)
		return
	}
	v.faultLogger().Warn("validator fault", args...)
}

// deferFaults returns a copy of v that records faults into the returned
// buffer instead of logging them.
func (v *Validator) deferFaults() (*Validator, *[][]any) {
	buf := new([][]any)
	cp := *v
	cp.pending = buf
	return &cp, buf
}

// propValue looks up key, mapping a key that is set to nil to Null.
func propValue(values map[string]any, key string) any {
	value, ok := values[key]
	if ok && value == nil {
		return Null
	}
	return value
}

// faultLogger resolves slog.Default lazily so hosts may replace it after init.
func (v *Validator) faultLogger() *slog.Logger {
	if v.log != nil {
		return v.log
	}
	return slog.Default().With(logger.Component("proptypes"))
}

var defaultValidator = New(WithRegistry(NewRegistry().Freeze()))

// Validate checks value against d with a validator backed by a frozen
// registry of the built-in types.
func Validate(value any, d *Descriptor, property string) ValidationErrors {
	return defaultValidator.Validate(value, d, property)
}

// ValidateProps is Validator.ValidateProps on the default validator.
func ValidateProps(values map[string]any, s *Schema) ValidationErrors {
	return defaultValidator.ValidateProps(values, s)
}
