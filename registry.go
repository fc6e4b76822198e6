package iso8583

import "fmt"

// FieldDefinition is one catalog entry: a field number, its representation
// string and a display name.
type FieldDefinition struct {
	Number         int    `json:"id" yaml:"id"`
	Representation string `json:"representation" yaml:"representation"`
	Name           string `json:"name" yaml:"name"`

	pattern Pattern
}

// Pattern returns the compiled pattern. It is nil for definitions that did
// not come from a Registry.
func (d FieldDefinition) Pattern() Pattern { return d.pattern }

// Registry is the read-only field table of one message family. Every
// definition in it carries a compiled pattern.
type Registry struct {
	family string
	defs   []FieldDefinition
	index  map[int]int
}

// NewRegistry compiles every definition with c and indexes them by position
// and number. Any invalid number, duplicate or unrecognized representation
// fails the whole registry with a *CatalogError.
func NewRegistry(family string, defs []FieldDefinition, c *Compiler) (*Registry, error) {
	if c == nil {
		c = NewCompiler()
	}
	r := &Registry{
		family: family,
		defs:   make([]FieldDefinition, 0, len(defs)),
		index:  make(map[int]int, len(defs)),
	}
	for _, def := range defs {
		if def.Number < MinFieldNumber || def.Number > MaxFieldNumber {
			return nil, r.catalogError(def, ErrInvalidFieldNumber)
		}
		if _, dup := r.index[def.Number]; dup {
			return nil, r.catalogError(def, ErrDuplicateField)
		}
		p, err := c.Compile(def.Representation)
		if err != nil {
			return nil, r.catalogError(def, err)
		}
		def.pattern = p
		if err := r.setAt(len(r.defs), def); err != nil {
			return nil, r.catalogError(def, err)
		}
		c.logger.Debug("bound field",
			"family", family,
			"field", def.Number,
			"representation", def.Representation,
			"name", def.Name)
	}
	return r, nil
}

func (r *Registry) catalogError(def FieldDefinition, err error) error {
	return &CatalogError{
		Family:         r.family,
		Field:          def.Number,
		Representation: def.Representation,
		Err:            err,
	}
}

// setAt stores def at position pos, replacing whatever was there. pos may be
// at most Len().
func (r *Registry) setAt(pos int, def FieldDefinition) error {
	switch {
	case pos < 0 || pos > len(r.defs):
		return fmt.Errorf("%w: position %d out of range", ErrInvalidFieldNumber, pos)
	case pos == len(r.defs):
		r.defs = append(r.defs, def)
	default:
		if old := r.defs[pos]; r.index[old.Number] == pos {
			delete(r.index, old.Number)
		}
		r.defs[pos] = def
	}
	r.index[def.Number] = pos
	return nil
}

// Family is the message family name the registry was built for.
func (r *Registry) Family() string { return r.family }

// Len is the number of definitions.
func (r *Registry) Len() int { return len(r.defs) }

// ByPosition returns the i-th definition in catalog order.
func (r *Registry) ByPosition(i int) (FieldDefinition, bool) {
	if i < 0 || i >= len(r.defs) {
		return FieldDefinition{}, false
	}
	return r.defs[i], true
}

// ByNumber returns the definition for field number n.
func (r *Registry) ByNumber(n int) (FieldDefinition, bool) {
	pos, ok := r.index[n]
	if !ok {
		return FieldDefinition{}, false
	}
	return r.defs[pos], true
}

// Definitions returns a copy of all definitions in catalog order.
func (r *Registry) Definitions() []FieldDefinition {
	out := make([]FieldDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// pattern looks up the compiled pattern for field n.
func (r *Registry) pattern(n int) (Pattern, error) {
	def, ok := r.ByNumber(n)
	if !ok {
		return nil, &FieldError{Field: n, Err: ErrFieldNotConfigured}
	}
	return def.pattern, nil
}
