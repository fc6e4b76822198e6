package iso8583

// PatternKind identifies one of the four field representations.
type PatternKind int

const (
	PatternFixedNumeric PatternKind = iota
	PatternFixedAlpha
	PatternFixedBinary
	PatternVariable
)

func (k PatternKind) String() string {
	switch k {
	case PatternFixedNumeric:
		return "fixed-numeric"
	case PatternFixedAlpha:
		return "fixed-alpha"
	case PatternFixedBinary:
		return "fixed-binary"
	case PatternVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// BitmapSelection decides whether a main message is built with a secondary
// bitmap.
type BitmapSelection int

const (
	// SelectByArrayLength uses the size of the caller's value array: up to
	// PrimaryValues entries builds a 64-bit map, up to SecondaryValues a
	// 128-bit map.
	SelectByArrayLength BitmapSelection = iota
	// SelectByHighestField adds the secondary map only when a field above 64
	// carries a value.
	SelectByHighestField
)

// Family names used by the built-in catalog.
const (
	FamilyCommon = "Common"
	FamilyDF61   = "DF61"
	PeerCommon   = "Common"
)

const (
	PrimaryBits   = 64
	SecondaryBits = 128

	// PrimaryValues and SecondaryValues are the conventional value array
	// sizes (field numbers are used as indexes, slot 0 is unused).
	PrimaryValues   = PrimaryBits + 1
	SecondaryValues = SecondaryBits + 1

	MinFieldNumber = 2
	MaxFieldNumber = 192

	RoutingPrefixLength = 8
	MTILength           = 4

	// PrivateField carries an embedded DF61 message in the main family.
	PrivateField = 61

	maxWireLength = 0xFFFF
)
