package proptypes

import (
	"fmt"
	"strings"
)

func missingRequired(p Path) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        "Missing required property " + p.String(),
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"path": p.String(),
		},
	}
}

func typeMismatch(p Path, noun string) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Expected property %s to be %s %s", p, article(noun), noun),
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"path": p.String(),
			"type": noun,
		},
	}
}

func arrayMismatch(p Path, elem Type) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Expected property %s to be an array of type %s", p, elem),
		TranslationKey: "validation.array_of",
		TranslationValues: map[string]any{
			"path": p.String(),
			"type": string(elem),
		},
	}
}

func shapeMismatch(p Path) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Expected property %s to match given shape", p),
		TranslationKey: "validation.shape",
		TranslationValues: map[string]any{
			"path": p.String(),
		},
	}
}

func unknownKey(p Path, key string) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Property %s has an unknown key: %s", p, key),
		TranslationKey: "validation.unknown_key",
		TranslationValues: map[string]any{
			"path": p.String(),
			"key":  key,
		},
	}
}

func notOneOf(p Path, values []any) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Property %s is not one of: %s", p, joinValues(values)),
		TranslationKey: "validation.one_of",
		TranslationValues: map[string]any{
			"path":   p.String(),
			"values": values,
		},
	}
}

func noMatchingType(p Path, types []*Descriptor) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Expected property %s to be one of expected types: [%s]", p, joinTypes(types)),
		TranslationKey: "validation.one_of_type",
		TranslationValues: map[string]any{
			"path":  p.String(),
			"types": joinTypes(types),
		},
	}
}

func notInstanceOf(p Path, class fmt.Stringer) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Expected property %s to be an instance of %s", p, class),
		TranslationKey: "validation.instance_of",
		TranslationValues: map[string]any{
			"path":  p.String(),
			"class": class.String(),
		},
	}
}

func customFailed(p Path, err error) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Property %s failed custom validation: %v", p, err),
		TranslationKey: "validation.custom",
		TranslationValues: map[string]any{
			"path":  p.String(),
			"error": err.Error(),
		},
	}
}

func validatorFault(p Path, tag Type, reason string) ValidationError {
	return ValidationError{
		Path:           p.String(),
		Message:        fmt.Sprintf("Property %s could not be validated: %s", p, reason),
		TranslationKey: "validation.fault",
		TranslationValues: map[string]any{
			"path":   p.String(),
			"type":   string(tag),
			"reason": reason,
		},
	}
}

func article(noun string) string {
	if noun == "" {
		return "a"
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func joinTypes(types []*Descriptor) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t.tag)
	}
	return strings.Join(parts, ", ")
}
