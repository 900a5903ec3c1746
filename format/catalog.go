package format

// Table describes one metadata table's number, name, and ordered column
// list. Tables are immutable package-level data; there is exactly one
// Table value per defined TableNumber.
type Table struct {
	Number  TableNumber
	Name    string
	Columns []Column
}

// catalog is a sparse array indexed by TableNumber; entries for numbers
// ECMA-335 does not define are nil.
var catalog [MaxTableNumber]*Table

func define(number TableNumber, name string, columns ...Column) {
	catalog[number] = &Table{Number: number, Name: name, Columns: columns}
}

func init() {
	define(Module, "Module",
		ConstantColumn("Generation", 2),
		HeapIndex("Name", HeapString),
		HeapIndex("Mvid", HeapGUID),
		HeapIndex("EncId", HeapGUID),
		HeapIndex("EncBaseId", HeapGUID),
	)

	define(TypeRef, "TypeRef",
		CodedIndex("ResolutionScope", ResolutionScopeFamily),
		HeapIndex("TypeName", HeapString),
		HeapIndex("TypeNamespace", HeapString),
	)

	define(TypeDef, "TypeDef",
		ConstantColumn("Flags", 4),
		HeapIndex("TypeName", HeapString),
		HeapIndex("TypeNamespace", HeapString),
		CodedIndex("Extends", TypeDefOrRefFamily),
		SimpleIndex("FieldList", Field),
		SimpleIndex("MethodList", MethodDef),
	)

	define(FieldPtr, "FieldPtr", SimpleIndex("Field", Field))

	define(Field, "Field",
		ConstantColumn("Flags", 2),
		HeapIndex("Name", HeapString),
		HeapIndex("Signature", HeapBlob),
	)

	define(MethodPtr, "MethodPtr", SimpleIndex("Method", MethodDef))

	define(MethodDef, "MethodDef",
		ConstantColumn("Rva", 4),
		ConstantColumn("ImplFlags", 2),
		ConstantColumn("Flags", 2),
		HeapIndex("Name", HeapString),
		HeapIndex("Signature", HeapBlob),
		SimpleIndex("ParamList", Param),
	)

	define(ParamPtr, "ParamPtr", SimpleIndex("Param", Param))

	define(Param, "Param",
		ConstantColumn("Flags", 2),
		ConstantColumn("Sequence", 2),
		HeapIndex("Name", HeapString),
	)

	define(InterfaceImpl, "InterfaceImpl",
		SimpleIndex("Class", TypeDef),
		CodedIndex("Interface", TypeDefOrRefFamily),
	)

	define(MemberRef, "MemberRef",
		CodedIndex("Class", MemberRefParentFamily),
		HeapIndex("Name", HeapString),
		HeapIndex("Signature", HeapBlob),
	)

	define(Constant, "Constant",
		ConstantColumn("Type", 2), // 1-byte type tag plus 1 byte of padding
		CodedIndex("Parent", HasConstantFamily),
		HeapIndex("Value", HeapBlob),
	)

	define(CustomAttribute, "CustomAttribute",
		CodedIndex("Parent", HasCustomAttributeFamily),
		CodedIndex("Type", CustomAttributeTypeFamily),
		HeapIndex("Value", HeapBlob),
	)

	define(FieldMarshal, "FieldMarshal",
		CodedIndex("Parent", HasFieldMarshalFamily),
		HeapIndex("NativeType", HeapBlob),
	)

	define(DeclSecurity, "DeclSecurity",
		ConstantColumn("Action", 2),
		CodedIndex("Parent", HasDeclSecurityFamily),
		HeapIndex("PermissionSet", HeapBlob),
	)

	define(ClassLayout, "ClassLayout",
		ConstantColumn("PackingSize", 2),
		ConstantColumn("ClassSize", 4),
		SimpleIndex("Parent", TypeDef),
	)

	define(FieldLayout, "FieldLayout",
		ConstantColumn("Offset", 4),
		SimpleIndex("Field", Field),
	)

	define(StandAloneSig, "StandAloneSig", HeapIndex("Signature", HeapBlob))

	define(EventMap, "EventMap",
		SimpleIndex("Parent", TypeDef),
		SimpleIndex("EventList", Event),
	)

	define(EventPtr, "EventPtr", SimpleIndex("Event", Event))

	define(Event, "Event",
		ConstantColumn("EventFlags", 2),
		HeapIndex("Name", HeapString),
		CodedIndex("EventType", TypeDefOrRefFamily),
	)

	define(PropertyMap, "PropertyMap",
		SimpleIndex("Parent", TypeDef),
		SimpleIndex("PropertyList", Property),
	)

	define(PropertyPtr, "PropertyPtr", SimpleIndex("Property", Property))

	define(Property, "Property",
		ConstantColumn("Flags", 2),
		HeapIndex("Name", HeapString),
		HeapIndex("Type", HeapBlob),
	)

	define(MethodSemantics, "MethodSemantics",
		ConstantColumn("Semantics", 2),
		SimpleIndex("Method", MethodDef),
		CodedIndex("Association", HasSemanticsFamily),
	)

	define(MethodImpl, "MethodImpl",
		SimpleIndex("Class", TypeDef),
		CodedIndex("MethodBody", MethodDefOrRefFamily),
		CodedIndex("MethodDeclaration", MethodDefOrRefFamily),
	)

	define(ModuleRef, "ModuleRef", HeapIndex("Name", HeapString))

	define(TypeSpec, "TypeSpec", HeapIndex("Signature", HeapBlob))

	define(ImplMap, "ImplMap",
		ConstantColumn("MappingFlags", 2),
		CodedIndex("MemberForwarded", MemberForwardedFamily),
		HeapIndex("ImportName", HeapString),
		SimpleIndex("ImportScope", ModuleRef),
	)

	define(FieldRVA, "FieldRVA",
		ConstantColumn("Rva", 4),
		SimpleIndex("Field", Field),
	)

	define(EncLog, "EncLog",
		ConstantColumn("Token", 4),
		ConstantColumn("FuncCode", 4),
	)

	define(EncMap, "EncMap", ConstantColumn("Token", 4))

	define(Assembly, "Assembly",
		ConstantColumn("HashAlgId", 4),
		ConstantColumn("MajorVersion", 2),
		ConstantColumn("MinorVersion", 2),
		ConstantColumn("BuildNumber", 2),
		ConstantColumn("RevisionNumber", 2),
		ConstantColumn("Flags", 4),
		HeapIndex("PublicKey", HeapBlob),
		HeapIndex("Name", HeapString),
		HeapIndex("Culture", HeapString),
	)

	define(AssemblyProcessor, "AssemblyProcessor", ConstantColumn("Processor", 4))

	define(AssemblyOS, "AssemblyOS",
		ConstantColumn("OSPlatformId", 4),
		ConstantColumn("OSMajorVersion", 4),
		ConstantColumn("OSMinorVersion", 4),
	)

	define(AssemblyRef, "AssemblyRef",
		ConstantColumn("MajorVersion", 2),
		ConstantColumn("MinorVersion", 2),
		ConstantColumn("BuildNumber", 2),
		ConstantColumn("RevisionNumber", 2),
		ConstantColumn("Flags", 4),
		HeapIndex("PublicKeyOrToken", HeapBlob),
		HeapIndex("Name", HeapString),
		HeapIndex("Culture", HeapString),
		HeapIndex("HashValue", HeapBlob),
	)

	define(AssemblyRefProcessor, "AssemblyRefProcessor",
		ConstantColumn("Processor", 4),
		SimpleIndex("AssemblyRef", AssemblyRef),
	)

	define(AssemblyRefOS, "AssemblyRefOS",
		ConstantColumn("OSPlatformId", 4),
		ConstantColumn("OSMajorVersion", 4),
		ConstantColumn("OSMinorVersion", 4),
		SimpleIndex("AssemblyRef", AssemblyRef),
	)

	define(File, "File",
		ConstantColumn("Flags", 4),
		HeapIndex("Name", HeapString),
		HeapIndex("HashValue", HeapBlob),
	)

	define(ExportedType, "ExportedType",
		ConstantColumn("Flags", 4),
		ConstantColumn("TypeDefId", 4), // unverified index into another module's TypeDef table
		HeapIndex("TypeName", HeapString),
		HeapIndex("TypeNamespace", HeapString),
		CodedIndex("Implementation", ImplementationFamily),
	)

	define(ManifestResource, "ManifestResource",
		ConstantColumn("Offset", 4),
		ConstantColumn("Flags", 4),
		HeapIndex("Name", HeapString),
		CodedIndex("Implementation", ImplementationFamily),
	)

	define(NestedClass, "NestedClass",
		SimpleIndex("NestedClass", TypeDef),
		SimpleIndex("EnclosingClass", TypeDef),
	)

	define(GenericParam, "GenericParam",
		ConstantColumn("Number", 2),
		ConstantColumn("Flags", 2),
		CodedIndex("Owner", TypeOrMethodDefFamily),
		HeapIndex("Name", HeapString),
	)

	define(MethodSpec, "MethodSpec",
		CodedIndex("Method", MethodDefOrRefFamily),
		HeapIndex("Instantiation", HeapBlob),
	)

	define(GenericParamConstraint, "GenericParamConstraint",
		SimpleIndex("Owner", GenericParam),
		CodedIndex("Constraint", TypeDefOrRefFamily),
	)
}

// Lookup returns the Table for a given number, or false if ECMA-335 does
// not define that number.
func Lookup(t TableNumber) (*Table, bool) {
	if int(t) >= len(catalog) {
		return nil, false
	}

	tbl := catalog[t]

	return tbl, tbl != nil
}

// All returns every defined table in ascending TableNumber order.
func All() []*Table {
	tables := make([]*Table, 0, len(catalog))
	for _, t := range catalog {
		if t != nil {
			tables = append(tables, t)
		}
	}

	return tables
}
