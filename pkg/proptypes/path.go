package proptypes

import "strconv"

// DefaultKeySeparator joins a shape key to its parent path.
const DefaultKeySeparator = "."

// Path is the human-readable location of a value inside the validated tree,
// such as bar, bar[0] or bar[0].fizz. Paths are values; every step returns a
// new Path and never mutates the receiver.
type Path struct {
	value string
	sep   string
}

// Root starts a path at a top-level property name.
func Root(name string) Path {
	return Path{value: name, sep: DefaultKeySeparator}
}

// WithSeparator returns p using sep for subsequent Key steps.
func (p Path) WithSeparator(sep string) Path {
	p.sep = sep
	return p
}

// Index descends into array element i.
func (p Path) Index(i int) Path {
	p.value = p.value + "[" + strconv.Itoa(i) + "]"
	return p
}

// Key descends into object key k.
func (p Path) Key(k string) Path {
	if p.value == "" {
		p.value = k
		return p
	}
	sep := p.sep
	if sep == "" {
		sep = DefaultKeySeparator
	}
	p.value = p.value + sep + k
	return p
}

func (p Path) String() string { return p.value }
