// Package proptypes validates arbitrary Go values against declarative type
// descriptors and reports every mismatch as a human-readable message tagged
// with the exact path where it occurred.
//
// Descriptors are built with composable constructors:
//
//	user := proptypes.Shape(
//	    proptypes.Key("name", proptypes.String.IsRequired()),
//	    proptypes.Key("tags", proptypes.ArrayOf(proptypes.String)),
//	    proptypes.Key("role", proptypes.OneOf("admin", "member")),
//	)
//
// and checked with a Validator:
//
//	errs := proptypes.Validate(value, user.IsRequired(), "user")
//	for _, e := range errs {
//	    fmt.Println(e.Message) // e.g. "Property user has an unknown key: age"
//	}
//
// # Architecture
//
//   - Descriptor – immutable record of a type tag, requiredness and the
//     tag specific payload. IsRequired returns a cached required twin.
//   - Registry   – tag to TypeFunc table seeded with the built-ins and open to
//     extension through Register. Configure it before validating; Freeze
//     rejects later changes.
//   - Validator  – the recursive engine. It handles absence and required
//     checks, dispatches through the registry and converts panics in
//     validators into a single violation.
//   - Path       – immutable location builder producing bar, bar[0], bar.fizz.
//
// # Messages
//
// Container types report nested problems first and one summary last:
//
//	Property bar[0] has an unknown key: foo
//	Expected property bar[0] to match given shape
//	Expected property bar to be an array of type shape
//
// By default arrayOf reports only the first failing element
// (FirstFailure); WithElementPolicy(AllFailures) reports all of them.
//
// # Value mapping
//
// Strings, numbers (all int, uint and float kinds and json.Number), bools
// and funcs map to their tags by reflect.Kind. Non-nil maps and structs are
// objects; shapes read string-keyed maps and structs (json tag names,
// promoted embedded fields). Slices and arrays are arrays, a nil slice is
// empty. Nil interfaces and nil pointers are absent values. A map key set to
// nil, or a nil map, is Null: present, and a type mismatch for every type
// except any, custom and oneOf lists containing nil.
//
// # Error Handling
//
// Malformed descriptors are programmer errors: builders panic with a
// *ConfigurationError, and the New* variants return it instead.
// Validation results are always data: ValidationErrors implements error,
// and Err returns nil for an empty result.
package proptypes
