// Package pgbin converts values to and from the PostgreSQL binary wire format.
/*
pgbin is the value transcoding layer of a PostgreSQL driver. It knows nothing
about connections, queries, or message framing. A driver holds a *Type
describing the destination column or parameter, checks acceptance, and calls
Encode or Decode. The byte layouts produced and consumed here must match the
server's own binary send and receive functions exactly.

Type Descriptors

A Type is an immutable description of a PostgreSQL type: its OID, schema,
name, and Kind. The Kind is what gives the generic codecs their structure. An
ArrayKind names its element type, a DomainKind its base type, a CompositeKind
its ordered fields. Descriptors for the standard types are built into the
package and can be looked up with TypeForOID and TypeForName. Descriptors for
user defined types are built by the driver's catalog introspection and passed
in; pgbin never queries the catalog itself.

Encoding and Decoding

BinaryEncoder and BinaryDecoder are the two contracts every value
representation implements. EncodeBinary and DecodeBinary are the unchecked
entry points: calling them with a type the value does not accept is a caller
bug. Code that dispatches over values it does not know at compile time must
go through the checked Encode and Decode functions, which consult Accepts
first and fail with UnsupportedTypeError.

SQL NULL is always explicit. Encoding a NULL value writes nothing and reports
it through the IsNull result. Decoding a NULL goes through DecodeNull, which
a representation without a null sentinel may refuse with
NullNotRepresentableError.

Arrays, Ranges, Domains, and Composites

Array, Range, and Composite are runtime generic codecs: they carry element
transcoders and recurse through the same two contracts, so they compose with
any element representation including those from extension packages. Domain
types have no wire format of their own; every codec in this package sees
through them, so a domain encodes and decodes byte for byte as its base type.

Extension Packages

The ext directory contains optional adapters bridging external Go types, such
as github.com/gofrs/uuid or github.com/shopspring/decimal, to the builtin
codecs. Each adapter is an independent package selected by import; none is
required by the core and adapters for the same PostgreSQL type do not
conflict.
*/
package pgbin
