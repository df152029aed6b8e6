package sqlgen

import "fmt"

// Parameters is an insertion-ordered name -> value map. The Nth value bound
// during assembly is named "paramN", with no gaps, so identical builder call
// sequences always produce identical parameter maps.
type Parameters struct {
	names  []string
	values map[string]interface{}
}

// NewParameters creates an empty parameter map.
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]interface{})}
}

func (p *Parameters) add(name string, value interface{}) {
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Get returns the value bound under name.
func (p *Parameters) Get(name string) (interface{}, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns the parameter names in binding order.
func (p *Parameters) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of bound parameters.
func (p *Parameters) Len() int {
	return len(p.names)
}

// Each walks the parameters in binding order.
func (p *Parameters) Each(fn func(name string, value interface{})) {
	for _, name := range p.names {
		fn(name, p.values[name])
	}
}

// Map returns a plain copy of the parameter map. Ordering is lost; use Names
// or Each when order matters.
func (p *Parameters) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Binder assigns placeholder names to literal values in the order they are
// encountered during assembly. The counter is local to one Build call and
// never resets mid-build.
type Binder struct {
	next   int
	params *Parameters
}

// NewBinder creates a binder starting at param0.
func NewBinder() *Binder {
	return &Binder{params: NewParameters()}
}

// Bind records value under the next free name and returns the placeholder to
// embed in the SQL text, e.g. "@param0".
func (b *Binder) Bind(value interface{}) string {
	name := fmt.Sprintf("param%d", b.next)
	b.next++
	b.params.add(name, value)
	return "@" + name
}

// Count returns how many values have been bound so far.
func (b *Binder) Count() int {
	return b.next
}

// Parameters returns the accumulated parameter map.
func (b *Binder) Parameters() *Parameters {
	return b.params
}
