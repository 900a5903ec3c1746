// Package format holds the static ECMA-335 table catalog: the ordered
// column list for every metadata table, and the coded-index families
// those columns can multiplex over. Nothing in this package touches a
// byte buffer; it is pure descriptive data plus lookup helpers.
package format

import "strconv"

// TableNumber identifies one of the CLI metadata tables. Valid numbers
// range 0..63 (one per bit of the 64-bit Valid mask), but only the numbers
// listed as constants below are defined by ECMA-335; the rest are absent
// from the catalog and any Valid bit set for them is UnknownTableBit.
type TableNumber uint8

// Table numbers as assigned by ECMA-335 Partition II, §II.22.
const (
	Module                 TableNumber = 0x00
	TypeRef                TableNumber = 0x01
	TypeDef                TableNumber = 0x02
	FieldPtr               TableNumber = 0x03
	Field                  TableNumber = 0x04
	MethodPtr              TableNumber = 0x05
	MethodDef              TableNumber = 0x06
	ParamPtr               TableNumber = 0x07
	Param                  TableNumber = 0x08
	InterfaceImpl          TableNumber = 0x09
	MemberRef              TableNumber = 0x0A
	Constant               TableNumber = 0x0B
	CustomAttribute        TableNumber = 0x0C
	FieldMarshal           TableNumber = 0x0D
	DeclSecurity           TableNumber = 0x0E
	ClassLayout            TableNumber = 0x0F
	FieldLayout            TableNumber = 0x10
	StandAloneSig          TableNumber = 0x11
	EventMap               TableNumber = 0x12
	EventPtr               TableNumber = 0x13
	Event                  TableNumber = 0x14
	PropertyMap            TableNumber = 0x15
	PropertyPtr            TableNumber = 0x16
	Property               TableNumber = 0x17
	MethodSemantics        TableNumber = 0x18
	MethodImpl             TableNumber = 0x19
	ModuleRef              TableNumber = 0x1A
	TypeSpec               TableNumber = 0x1B
	ImplMap                TableNumber = 0x1C
	FieldRVA               TableNumber = 0x1D
	EncLog                 TableNumber = 0x1E
	EncMap                 TableNumber = 0x1F
	Assembly               TableNumber = 0x20
	AssemblyProcessor      TableNumber = 0x21
	AssemblyOS             TableNumber = 0x22
	AssemblyRef            TableNumber = 0x23
	AssemblyRefProcessor   TableNumber = 0x24
	AssemblyRefOS          TableNumber = 0x25
	File                   TableNumber = 0x26
	ExportedType           TableNumber = 0x27
	ManifestResource       TableNumber = 0x28
	NestedClass            TableNumber = 0x29
	GenericParam           TableNumber = 0x2A
	MethodSpec             TableNumber = 0x2B
	GenericParamConstraint TableNumber = 0x2C
)

// String returns the table's catalog name, or "TableNumber(N)" if number
// is not defined by ECMA-335.
func (t TableNumber) String() string {
	if tbl, ok := Lookup(t); ok {
		return tbl.Name
	}

	return "TableNumber(" + strconv.Itoa(int(t)) + ")"
}

// NoTarget marks an unused slot in a coded-index family's target list
// (e.g. CustomAttributeType reserves tags 0, 1, 4-7). It is never a valid
// TableNumber under ECMA-335, which only assigns numbers up to 0x2C.
const NoTarget TableNumber = 0xFF

// MaxTableNumber bounds the sparse arrays keyed by TableNumber; the
// Valid/Sorted bitmasks are 64 bits wide, one bit per table number, so 64
// is the ceiling.
const MaxTableNumber = 64
