// Package propcheck validates dynamic values against declarative type descriptors.
//
// Descriptors are composed with builders and checked by a validator that
// returns every violation with its property path and a readable message.
//
// Key Features:
//
//   - Composable descriptors: primitives, arrayOf, shape, oneOf, oneOfType,
//     instanceOf and custom checks, each with a required variant
//   - Deterministic, ordered violations with dotted/indexed paths
//   - Extensible type registry for host-defined tags
//   - Schemas loaded from YAML or JSON documents
//   - Environment-driven configuration and slog logging
//
// Basic Usage:
//
//	d := proptypes.ArrayOf(proptypes.Shape(
//		proptypes.Key("fizz", proptypes.String.IsRequired()),
//		proptypes.Key("bang", proptypes.Number),
//	)).IsRequired()
//
//	errs := proptypes.Validate(value, d, "bar")
//	for _, e := range errs {
//		fmt.Println(e.Path, e.Message)
//	}
//
// Loading a schema:
//
//	schema, err := propschema.ParseFile(ctx, os.DirFS("schemas"), "article.yaml")
//	if err != nil {
//		return err
//	}
//	errs := proptypes.ValidateProps(props, schema)
//
// Packages:
//
//   - pkg/proptypes: descriptors, builders, registry and validation engine
//   - pkg/propschema: YAML/JSON schema documents
//   - pkg/logger: slog factory and attribute helpers
//   - pkg/config: environment configuration loading
package propcheck
