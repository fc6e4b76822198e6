package iso8583

import "fmt"

// State is the per-call context of a parse or build. It is created fresh for
// every call and never shared.
type State struct {
	cursor int
	text   string // parse input
	bitmap []byte // '0'/'1' per field, index n-1 for field n
	buf    []byte // build output
	fields *FieldSet
}

func newParseState(text string) *State {
	return &State{text: text, fields: NewFieldSet(16)}
}

func newBuildState(extended bool) *State {
	st := &State{
		bitmap: make([]byte, 1, SecondaryBits),
		buf:    getBuffer(),
		fields: NewFieldSet(16),
	}
	st.bitmap[0] = '0'
	if extended {
		st.bitmap[0] = '1'
	}
	return st
}

// release hands the build buffer back to the pool. The state is unusable
// afterwards.
func (st *State) release() {
	if st.buf != nil {
		putBuffer(st.buf)
		st.buf = nil
	}
}

// Cursor is the read offset into the parse input.
func (st *State) Cursor() int { return st.cursor }

// Bitmap returns the bit string accumulated or decoded so far.
func (st *State) Bitmap() string { return string(st.bitmap) }

// Fields returns the fields recorded so far.
func (st *State) Fields() *FieldSet { return st.fields }

// AddField records a field value.
func (st *State) AddField(number int, data string) {
	st.fields.Add(number, data)
}

// Field returns a recorded field.
func (st *State) Field(number int) (Field, bool) {
	return st.fields.Get(number)
}

// HasField reports whether the bitmap flags field number as present.
func (st *State) HasField(number int) bool {
	i := number - 1
	return i >= 0 && i < len(st.bitmap) && st.bitmap[i] == '1'
}

// take reads n characters at the cursor.
func (st *State) take(n int) (string, error) {
	if n < 0 || st.cursor+n > len(st.text) {
		return "", fmt.Errorf("%w: need %d characters at offset %d, have %d",
			ErrBufferUnderrun, n, st.cursor, len(st.text)-st.cursor)
	}
	s := st.text[st.cursor : st.cursor+n]
	st.cursor += n
	return s, nil
}

// peek returns n characters at the cursor without consuming them.
func (st *State) peek(n int) (string, error) {
	if st.cursor+n > len(st.text) {
		return "", fmt.Errorf("%w: need %d characters at offset %d, have %d",
			ErrBufferUnderrun, n, st.cursor, len(st.text)-st.cursor)
	}
	return st.text[st.cursor : st.cursor+n], nil
}

// emit appends wire text for the next field and flags it present.
func (st *State) emit(wire string) {
	st.buf = append(st.buf, wire...)
	st.bitmap = append(st.bitmap, '1')
}

// skip flags the next field absent.
func (st *State) skip() {
	st.bitmap = append(st.bitmap, '0')
}
