package pgbin

// OID is PostgreSQL's numeric identifier for a type. It is stable within a
// session. Zero means the type has no catalog identity yet, e.g. a
// client-synthesized descriptor.
type OID uint32

// PostgreSQL oids for well known types.
const (
	BoolOID             OID = 16
	ByteaOID            OID = 17
	NameOID             OID = 19
	Int8OID             OID = 20
	Int2OID             OID = 21
	Int4OID             OID = 23
	TextOID             OID = 25
	OIDOID              OID = 26
	JSONOID             OID = 114
	JSONArrayOID        OID = 199
	Float4OID           OID = 700
	Float8OID           OID = 701
	UnknownOID          OID = 705
	BoolArrayOID        OID = 1000
	ByteaArrayOID       OID = 1001
	Int2ArrayOID        OID = 1005
	Int4ArrayOID        OID = 1007
	TextArrayOID        OID = 1009
	VarcharArrayOID     OID = 1015
	Int8ArrayOID        OID = 1016
	Float4ArrayOID      OID = 1021
	Float8ArrayOID      OID = 1022
	BPCharOID           OID = 1042
	VarcharOID          OID = 1043
	DateOID             OID = 1082
	TimestampOID        OID = 1114
	TimestampArrayOID   OID = 1115
	DateArrayOID        OID = 1182
	TimestamptzOID      OID = 1184
	TimestamptzArrayOID OID = 1185
	NumericOID          OID = 1700
	NumericArrayOID     OID = 1231
	RecordOID           OID = 2249
	VoidOID             OID = 2278
	UUIDOID             OID = 2950
	UUIDArrayOID        OID = 2951
	JSONBOID            OID = 3802
	JSONBArrayOID       OID = 3807
	Int4RangeOID        OID = 3904
	NumrangeOID         OID = 3906
	TsrangeOID          OID = 3908
	TstzrangeOID        OID = 3910
	DateRangeOID        OID = 3912
	Int8RangeOID        OID = 3926
)

// Kind is the structural classification of a Type. It is a closed set:
// SimpleKind, EnumKind, ArrayKind, RangeKind, DomainKind, CompositeKind,
// and PseudoKind.
type Kind interface {
	isKind()
}

// SimpleKind is a type with no substructure, e.g. int4 or text.
type SimpleKind struct{}

// EnumKind is an enumerated type. Variants are the declared labels in
// catalog order.
type EnumKind struct {
	Variants []string
}

// ArrayKind is an array over Element.
type ArrayKind struct {
	Element *Type
}

// RangeKind is a range over Element.
type RangeKind struct {
	Element *Type
}

// DomainKind is a named constraint over Base. Domains are transparent at the
// wire level; every codec in this package sees through them.
type DomainKind struct {
	Base *Type
}

// CompositeKind is a row type with named, ordered fields.
type CompositeKind struct {
	Fields []CompositeField
}

// CompositeField is one field of a composite type.
type CompositeField struct {
	Name string
	Type *Type
}

// PseudoKind is a type that cannot be transcoded, e.g. void.
type PseudoKind struct{}

func (SimpleKind) isKind()    {}
func (EnumKind) isKind()      {}
func (ArrayKind) isKind()     {}
func (RangeKind) isKind()     {}
func (DomainKind) isKind()    {}
func (CompositeKind) isKind() {}
func (PseudoKind) isKind()    {}

func (k EnumKind) contains(label string) bool {
	for _, v := range k.Variants {
		if v == label {
			return true
		}
	}
	return false
}

// Type is an immutable description of a PostgreSQL type. Descriptors are
// constructed once, by this package for the builtin types and by the
// driver's catalog introspection for everything else, and may be shared
// across any number of goroutines without synchronization.
type Type struct {
	oid    OID
	schema string
	name   string
	kind   Kind
}

// NewType constructs a type descriptor. oid may be zero for a descriptor
// that has not been round-tripped through the catalog.
func NewType(oid OID, schema, name string, kind Kind) *Type {
	return &Type{oid: oid, schema: schema, name: name, kind: kind}
}

func (t *Type) OID() OID {
	return t.oid
}

func (t *Type) Name() string {
	return t.name
}

func (t *Type) Schema() string {
	return t.schema
}

func (t *Type) Kind() Kind {
	return t.kind
}

// Equal compares by OID when both descriptors have one, falling back to
// (schema, name) for identifier-less synthesized types.
func (t *Type) Equal(rhs *Type) bool {
	if t == rhs {
		return true
	}
	if t == nil || rhs == nil {
		return false
	}
	if t.oid != 0 && rhs.oid != 0 {
		return t.oid == rhs.oid
	}
	return t.schema == rhs.schema && t.name == rhs.name
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.schema == "" || t.schema == "pg_catalog" {
		return t.name
	}
	return t.schema + "." + t.name
}

// maxDomainDepth bounds domain base chains. The catalog cannot create a
// cyclic domain, but a buggy introspection layer could hand us one.
const maxDomainDepth = 16

// underlying strips domain wrappers. Domains never have a wire
// representation of their own, so acceptance and transcoding always operate
// on the underlying type.
func underlying(dt *Type) *Type {
	for i := 0; i < maxDomainDepth; i++ {
		dk, ok := dt.kind.(DomainKind)
		if !ok {
			return dt
		}
		dt = dk.Base
	}
	return dt
}

var builtinTypesByOID map[OID]*Type
var builtinTypesByName map[string]*Type

func init() {
	simple := func(oid OID, name string) *Type {
		return NewType(oid, "pg_catalog", name, SimpleKind{})
	}
	pseudo := func(oid OID, name string) *Type {
		return NewType(oid, "pg_catalog", name, PseudoKind{})
	}

	scalars := []*Type{
		simple(BoolOID, "bool"),
		simple(ByteaOID, "bytea"),
		simple(NameOID, "name"),
		simple(Int8OID, "int8"),
		simple(Int2OID, "int2"),
		simple(Int4OID, "int4"),
		simple(TextOID, "text"),
		simple(OIDOID, "oid"),
		simple(JSONOID, "json"),
		simple(Float4OID, "float4"),
		simple(Float8OID, "float8"),
		simple(BPCharOID, "bpchar"),
		simple(VarcharOID, "varchar"),
		simple(DateOID, "date"),
		simple(TimestampOID, "timestamp"),
		simple(TimestamptzOID, "timestamptz"),
		simple(NumericOID, "numeric"),
		simple(UUIDOID, "uuid"),
		simple(JSONBOID, "jsonb"),
		simple(UnknownOID, "unknown"),
		pseudo(RecordOID, "record"),
		pseudo(VoidOID, "void"),
	}

	builtinTypesByOID = make(map[OID]*Type, 64)
	builtinTypesByName = make(map[string]*Type, 64)
	register := func(t *Type) {
		builtinTypesByOID[t.oid] = t
		builtinTypesByName[t.name] = t
	}

	for _, t := range scalars {
		register(t)
	}

	mustOID := func(oid OID) *Type {
		return builtinTypesByOID[oid]
	}
	array := func(oid OID, name string, elem OID) *Type {
		return NewType(oid, "pg_catalog", name, ArrayKind{Element: mustOID(elem)})
	}
	rng := func(oid OID, name string, elem OID) *Type {
		return NewType(oid, "pg_catalog", name, RangeKind{Element: mustOID(elem)})
	}

	composites := []*Type{
		array(BoolArrayOID, "_bool", BoolOID),
		array(ByteaArrayOID, "_bytea", ByteaOID),
		array(Int2ArrayOID, "_int2", Int2OID),
		array(Int4ArrayOID, "_int4", Int4OID),
		array(TextArrayOID, "_text", TextOID),
		array(VarcharArrayOID, "_varchar", VarcharOID),
		array(Int8ArrayOID, "_int8", Int8OID),
		array(Float4ArrayOID, "_float4", Float4OID),
		array(Float8ArrayOID, "_float8", Float8OID),
		array(JSONArrayOID, "_json", JSONOID),
		array(TimestampArrayOID, "_timestamp", TimestampOID),
		array(DateArrayOID, "_date", DateOID),
		array(TimestamptzArrayOID, "_timestamptz", TimestamptzOID),
		array(NumericArrayOID, "_numeric", NumericOID),
		array(UUIDArrayOID, "_uuid", UUIDOID),
		array(JSONBArrayOID, "_jsonb", JSONBOID),
		rng(Int4RangeOID, "int4range", Int4OID),
		rng(NumrangeOID, "numrange", NumericOID),
		rng(TsrangeOID, "tsrange", TimestampOID),
		rng(TstzrangeOID, "tstzrange", TimestamptzOID),
		rng(DateRangeOID, "daterange", DateOID),
		rng(Int8RangeOID, "int8range", Int8OID),
	}

	for _, t := range composites {
		register(t)
	}
}

// TypeForOID returns the builtin descriptor for oid. Descriptors for custom
// types come from the driver's catalog introspection, not from here.
func TypeForOID(oid OID) (*Type, bool) {
	t, ok := builtinTypesByOID[oid]
	return t, ok
}

// TypeForName returns the builtin descriptor named name.
func TypeForName(name string) (*Type, bool) {
	t, ok := builtinTypesByName[name]
	return t, ok
}

// NewValueForOID returns a zero value transcoder for well known types. It is
// the element codec source for Record and a convenience for drivers
// materializing rows of builtin types.
func NewValueForOID(oid OID) (ValueTranscoder, bool) {
	switch oid {
	case BoolOID:
		return &Bool{}, true
	case ByteaOID:
		return &Bytea{}, true
	case NameOID, TextOID, BPCharOID, VarcharOID, UnknownOID:
		return &Text{}, true
	case Int2OID:
		return &Int2{}, true
	case Int4OID:
		return &Int4{}, true
	case Int8OID:
		return &Int8{}, true
	case Float4OID:
		return &Float4{}, true
	case Float8OID:
		return &Float8{}, true
	case JSONOID:
		return &JSON{}, true
	case JSONBOID:
		return &JSONB{}, true
	case DateOID:
		return &Date{}, true
	case TimestampOID, TimestamptzOID:
		return &Timestamp{}, true
	case NumericOID:
		return &Numeric{}, true
	case UUIDOID:
		return &UUID{}, true
	case BoolArrayOID:
		return NewArray(func() ValueTranscoder { return &Bool{} }), true
	case ByteaArrayOID:
		return NewArray(func() ValueTranscoder { return &Bytea{} }), true
	case Int2ArrayOID:
		return NewArray(func() ValueTranscoder { return &Int2{} }), true
	case Int4ArrayOID:
		return NewArray(func() ValueTranscoder { return &Int4{} }), true
	case Int8ArrayOID:
		return NewArray(func() ValueTranscoder { return &Int8{} }), true
	case TextArrayOID, VarcharArrayOID:
		return NewArray(func() ValueTranscoder { return &Text{} }), true
	case Float4ArrayOID:
		return NewArray(func() ValueTranscoder { return &Float4{} }), true
	case Float8ArrayOID:
		return NewArray(func() ValueTranscoder { return &Float8{} }), true
	case JSONArrayOID:
		return NewArray(func() ValueTranscoder { return &JSON{} }), true
	case JSONBArrayOID:
		return NewArray(func() ValueTranscoder { return &JSONB{} }), true
	case DateArrayOID:
		return NewArray(func() ValueTranscoder { return &Date{} }), true
	case TimestampArrayOID, TimestamptzArrayOID:
		return NewArray(func() ValueTranscoder { return &Timestamp{} }), true
	case NumericArrayOID:
		return NewArray(func() ValueTranscoder { return &Numeric{} }), true
	case UUIDArrayOID:
		return NewArray(func() ValueTranscoder { return &UUID{} }), true
	case Int4RangeOID:
		return NewRange(func() ValueTranscoder { return &Int4{} }), true
	case Int8RangeOID:
		return NewRange(func() ValueTranscoder { return &Int8{} }), true
	case NumrangeOID:
		return NewRange(func() ValueTranscoder { return &Numeric{} }), true
	case TsrangeOID, TstzrangeOID:
		return NewRange(func() ValueTranscoder { return &Timestamp{} }), true
	case DateRangeOID:
		return NewRange(func() ValueTranscoder { return &Date{} }), true
	default:
		return nil, false
	}
}
