package proptypes

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/propcheck/pkg/logger"
)

var builtins = map[Type]TypeFunc{
	TypeString:     kindValidator("string", isString),
	TypeNumber:     kindValidator("number", isNumber),
	TypeBool:       kindValidator("boolean", isBool),
	TypeFunction:   kindValidator("function", isFunc),
	TypeObject:     kindValidator("object", isObject),
	TypeArray:      kindValidator("array", isList),
	TypeDate:       kindValidator("date", isDate),
	TypeUUID:       formatValidator("valid UUID", isUUID),
	TypeEmail:      formatValidator("valid email address", isEmail),
	TypeURL:        formatValidator("valid URL", isURL),
	TypeAny:        validateAny,
	TypeArrayOf:    validateArrayOf,
	TypeShape:      validateShape,
	TypeOneOf:      validateOneOf,
	TypeOneOfType:  validateOneOfType,
	TypeInstanceOf: validateInstanceOf,
	TypeCustom:     validateCustom,
}

// Null is a present value that holds nothing, such as a map key set to nil.
// nil itself means absent. Null fails every type except any, custom checks
// and oneOf lists that contain nil.
var Null any = null{}

type null struct{}

func isNull(value any) bool {
	_, ok := value.(null)
	return ok
}

var (
	timeType       = reflect.TypeFor[time.Time]()
	jsonNumberType = reflect.TypeFor[json.Number]()
)

func kindValidator(noun string, match func(reflect.Value) bool) TypeFunc {
	return func(_ *Validator, value any, _ *Descriptor, p Path) ValidationErrors {
		if match(indirect(value)) {
			return nil
		}
		return ValidationErrors{typeMismatch(p, noun)}
	}
}

func formatValidator(noun string, match func(string) bool) TypeFunc {
	return func(_ *Validator, value any, _ *Descriptor, p Path) ValidationErrors {
		rv := indirect(value)
		if isString(rv) && match(rv.String()) {
			return nil
		}
		return ValidationErrors{typeMismatch(p, noun)}
	}
}

func validateAny(*Validator, any, *Descriptor, Path) ValidationErrors {
	return nil
}

// validateArrayOf reports nested element errors followed by one summary.
// Under FirstFailure only the first failing element is reported, although
// every element is still checked.
func validateArrayOf(v *Validator, value any, d *Descriptor, p Path) ValidationErrors {
	rv := indirect(value)
	if !isList(rv) {
		return ValidationErrors{typeMismatch(p, "array")}
	}

	var errs ValidationErrors
	failed := false
	for i := range rv.Len() {
		elemErrs := v.Check(rv.Index(i).Interface(), d.elem, p.Index(i))
		if elemErrs.IsEmpty() {
			continue
		}
		if failed && v.policy == FirstFailure {
			continue
		}
		errs = append(errs, elemErrs...)
		failed = true
	}

	if failed {
		errs = append(errs, arrayMismatch(p, d.elem.tag))
	}
	return errs
}

// validateShape checks declared keys in order, then unknown keys in lexical
// order, then appends the shape summary when anything failed.
func validateShape(v *Validator, value any, d *Descriptor, p Path) ValidationErrors {
	obj, ok := objectEntries(value)
	if !ok {
		return ValidationErrors{typeMismatch(p, "object")}
	}

	var errs ValidationErrors
	for _, f := range d.fields {
		errs = append(errs, v.Check(obj.values[f.Name], f.Descriptor, p.Key(f.Name))...)
	}
	for _, key := range obj.keys {
		if _, declared := d.index[key]; !declared {
			errs = append(errs, unknownKey(p, key))
		}
	}

	if len(errs) > 0 {
		errs = append(errs, shapeMismatch(p))
	}
	return errs
}

func validateOneOf(_ *Validator, value any, d *Descriptor, p Path) ValidationErrors {
	for _, allowed := range d.values {
		if equalValues(value, allowed) {
			return nil
		}
	}
	return ValidationErrors{notOneOf(p, d.values)}
}

// validateOneOfType accepts the value when any alternative reports no errors.
// Errors of the individual alternatives are not surfaced. Faults raised while
// trying alternatives are logged only when no alternative matches.
func validateOneOfType(v *Validator, value any, d *Descriptor, p Path) ValidationErrors {
	trial, faults := v.deferFaults()
	for _, alt := range d.types {
		if trial.Check(value, alt, p).IsEmpty() {
			return nil
		}
	}

	union := logger.Group("one_of_type", logger.Path(p.String()), logger.Count(len(d.types)))
	for _, args := range *faults {
		v.logFault(append(args, union))
	}
	return ValidationErrors{noMatchingType(p, d.types)}
}

func validateInstanceOf(_ *Validator, value any, d *Descriptor, p Path) ValidationErrors {
	if isNull(value) {
		return ValidationErrors{notInstanceOf(p, d.class)}
	}
	if matchesClass(reflect.TypeOf(value), d.class) {
		return nil
	}
	if rv := indirect(value); rv.IsValid() && matchesClass(rv.Type(), d.class) {
		return nil
	}
	return ValidationErrors{notInstanceOf(p, d.class)}
}

func validateCustom(_ *Validator, value any, d *Descriptor, p Path) ValidationErrors {
	if isNull(value) {
		value = nil
	}
	if err := d.check(value); err != nil {
		return ValidationErrors{customFailed(p, err)}
	}
	return nil
}

// indirect dereferences non-nil pointers and interfaces. Null yields the
// zero Value.
func indirect(value any) reflect.Value {
	if isNull(value) {
		return reflect.Value{}
	}
	rv := reflect.ValueOf(value)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// isAbsent treats nil interfaces and nil pointers as a missing value.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil()
}

func isString(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.String && rv.Type() != jsonNumberType
}

func isNumber(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	if rv.Type() == jsonNumberType {
		_, err := json.Number(rv.String()).Float64()
		return err == nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isBool(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.Bool
}

func isFunc(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.Func && !rv.IsNil()
}

// isObject accepts structs and non-nil maps. A nil map is Null.
func isObject(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	}
	return false
}

func isList(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func isDate(rv reflect.Value) bool {
	return rv.IsValid() && rv.Type() == timeType
}

func matchesClass(t, class reflect.Type) bool {
	if t == nil {
		return false
	}
	if t == class {
		return true
	}
	return class.Kind() == reflect.Interface && t.Implements(class)
}

type entries struct {
	keys   []string
	values map[string]any
}

// add keeps the first value recorded for key. A nil value is Null.
func (e *entries) add(key string, value any) {
	if _, ok := e.values[key]; ok {
		return
	}
	if value == nil {
		value = Null
	}
	e.keys = append(e.keys, key)
	e.values[key] = value
}

// objectEntries exposes string-keyed maps and structs as key/value entries.
// Struct keys follow encoding/json naming: the json tag name when set,
// the field name otherwise; fields tagged "-" and unexported fields are
// skipped. Fields of exported embedded structs are promoted unless an outer
// field has the same name. Nil maps are Null, not objects.
func objectEntries(value any) (entries, bool) {
	rv := indirect(value)
	if !isObject(rv) {
		return entries{}, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return entries{}, false
		}
		e := entries{values: make(map[string]any, rv.Len())}
		iter := rv.MapRange()
		for iter.Next() {
			e.add(iter.Key().String(), iter.Value().Interface())
		}
		slices.Sort(e.keys)
		return e, true

	default:
		e := entries{values: make(map[string]any, rv.NumField())}
		structEntries(rv, &e)
		slices.Sort(e.keys)
		return e, true
	}
}

func structEntries(rv reflect.Value, e *entries) {
	t := rv.Type()
	var embedded []reflect.Value
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, tagged, skip := jsonName(sf)
		if skip {
			continue
		}
		if sf.Anonymous && !tagged {
			inner := indirect(rv.Field(i).Interface())
			if inner.IsValid() && inner.Kind() == reflect.Struct {
				embedded = append(embedded, inner)
				continue
			}
			if !inner.IsValid() && sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.Struct {
				continue
			}
		}
		e.add(name, rv.Field(i).Interface())
	}
	for _, inner := range embedded {
		structEntries(inner, e)
	}
}

func jsonName(sf reflect.StructField) (name string, tagged, skip bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name, false, false
	}
	tagName, _, _ := strings.Cut(tag, ",")
	switch tagName {
	case "-":
		return "", false, true
	case "":
		return sf.Name, false, false
	}
	return tagName, true, false
}

func equalValues(a, b any) bool {
	ra, rb := indirect(a), indirect(b)
	if !ra.IsValid() || !rb.IsValid() {
		return ra.IsValid() == rb.IsValid()
	}
	if na, nb := isNumber(ra), isNumber(rb); na || nb {
		return na && nb && equalNumbers(ra, rb)
	}
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return ra.String() == rb.String()
	}
	return reflect.DeepEqual(ra.Interface(), rb.Interface())
}

// equalNumbers compares integers exactly and falls back to float64 only
// when both sides are fractional.
func equalNumbers(a, b reflect.Value) bool {
	ia, aInt := toInteger(a)
	ib, bInt := toInteger(b)
	switch {
	case aInt && bInt:
		return ia == ib
	case aInt:
		fb, _ := toFloat(b)
		whole, ok := floatInteger(fb)
		return ok && ia == whole
	case bInt:
		fa, _ := toFloat(a)
		whole, ok := floatInteger(fa)
		return ok && whole == ib
	}
	fa, _ := toFloat(a)
	fb, _ := toFloat(b)
	return fa == fb
}

// integer is an exact signed 65-bit integer.
type integer struct {
	neg bool
	mag uint64
}

func intOf(i int64) integer {
	if i < 0 {
		return integer{neg: true, mag: uint64(-(i + 1)) + 1}
	}
	return integer{mag: uint64(i)}
}

func toInteger(rv reflect.Value) (integer, bool) {
	if rv.Type() == jsonNumberType {
		s := rv.String()
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return intOf(i), true
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return integer{mag: u}, true
		}
		return integer{}, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intOf(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer{mag: rv.Uint()}, true
	}
	return integer{}, false
}

// floatInteger converts a whole float within the 65-bit range.
func floatInteger(f float64) (integer, bool) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<64 {
		return integer{}, false
	}
	if f < 0 {
		return integer{neg: true, mag: uint64(-f)}, true
	}
	return integer{mag: uint64(f)}, true
}

func toFloat(rv reflect.Value) (float64, bool) {
	if !isNumber(rv) {
		return 0, false
	}
	if rv.Type() == jsonNumberType {
		f, err := json.Number(rv.String()).Float64()
		return f, err == nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}
