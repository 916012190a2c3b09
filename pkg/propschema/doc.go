// Package propschema loads proptypes schemas from YAML or JSON documents.
//
// A document declares its properties under a top-level properties mapping.
// Each property is either a type tag or a descriptor mapping:
//
//	properties:
//	  title: string!
//	  status:
//	    type: oneOf
//	    values: [draft, published]
//	    default: draft
//	  authors:
//	    type: arrayOf
//	    required: true
//	    of:
//	      type: shape
//	      fields:
//	        name: string!
//	        email: email
//
// A trailing "!" on a tag marks the descriptor required. Shape fields keep
// their document order. Tags are checked against a registry, so types
// registered by the host become usable once the registry is passed with
// WithRegistry. instanceOf classes and custom checks are referenced by name
// and bound with WithClass and WithCheck.
//
// Errors wrap the sentinels in errors.go and carry the source line of the
// offending node.
package propschema
