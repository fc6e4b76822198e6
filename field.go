package iso8583

// Field is one present field of a parsed or built message.
type Field struct {
	Number int
	Data   string
}

// FieldRecord is the chained view of a field: NextNumber names the field that
// follows it in message order, -1 for the last one.
type FieldRecord struct {
	Number     int
	Data       string
	NextNumber int
}

// FieldSet keeps fields in insertion order with lookup by field number. The
// zero value is ready to use. A number added twice keeps both entries in
// order, and lookups resolve to the latest.
type FieldSet struct {
	fields []Field
	index  map[int]int
}

// NewFieldSet returns an empty set with room for n fields.
func NewFieldSet(n int) *FieldSet {
	return &FieldSet{
		fields: make([]Field, 0, n),
		index:  make(map[int]int, n),
	}
}

// Add appends a field and points the number index at it.
func (fs *FieldSet) Add(number int, data string) {
	if fs.index == nil {
		fs.index = make(map[int]int)
	}
	fs.index[number] = len(fs.fields)
	fs.fields = append(fs.fields, Field{Number: number, Data: data})
}

// Get returns the field with the given number.
func (fs *FieldSet) Get(number int) (Field, bool) {
	if fs == nil {
		return Field{}, false
	}
	pos, ok := fs.index[number]
	if !ok {
		return Field{}, false
	}
	return fs.fields[pos], true
}

// Has reports whether a field with the given number was added.
func (fs *FieldSet) Has(number int) bool {
	_, ok := fs.Get(number)
	return ok
}

// Len returns the number of fields in the set.
func (fs *FieldSet) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.fields)
}

// All returns a copy of the fields in insertion order.
func (fs *FieldSet) All() []Field {
	if fs == nil {
		return nil
	}
	out := make([]Field, len(fs.fields))
	copy(out, fs.fields)
	return out
}

// Numbers returns the field numbers in insertion order.
func (fs *FieldSet) Numbers() []int {
	if fs == nil {
		return nil
	}
	out := make([]int, len(fs.fields))
	for i, f := range fs.fields {
		out[i] = f.Number
	}
	return out
}

// Chain returns the fields as linked records preceded by the anchor record
// {0, "", first}. The anchor's NextNumber is -1 when the set is empty.
func (fs *FieldSet) Chain() []FieldRecord {
	n := fs.Len()
	out := make([]FieldRecord, n+1)
	out[0] = FieldRecord{NextNumber: -1}
	for i := 0; i < n; i++ {
		f := fs.fields[i]
		out[i].NextNumber = f.Number
		out[i+1] = FieldRecord{Number: f.Number, Data: f.Data, NextNumber: -1}
	}
	return out
}
