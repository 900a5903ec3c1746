package format

// CodedIndexFamily is a tagged union over an ordered, fixed list of target
// tables. The tag occupies the low TagBits bits of the stored value; the
// remaining bits hold a 1-based row number (0 meaning absent). Targets may
// contain NoTarget for tag values ECMA-335 reserves but never assigns
// (see CustomAttributeTypeFamily).
type CodedIndexFamily struct {
	Name    string
	Targets []TableNumber
	TagBits uint8
}

// Target returns the table a given tag selects, or false if the tag is
// out of range or reserved.
func (f *CodedIndexFamily) Target(tag int) (TableNumber, bool) {
	if tag < 0 || tag >= len(f.Targets) {
		return 0, false
	}

	t := f.Targets[tag]

	return t, t != NoTarget
}

// The 13 coded-index families defined by ECMA-335 Partition II, §II.24.2.6.
// Tag order within Targets is significant: it is the tag value ECMA-335
// assigns to that target, not an arbitrary ordering.
var (
	TypeDefOrRefFamily = &CodedIndexFamily{
		Name:    "TypeDefOrRef",
		Targets: []TableNumber{TypeDef, TypeRef, TypeSpec},
		TagBits: 2,
	}

	HasConstantFamily = &CodedIndexFamily{
		Name:    "HasConstant",
		Targets: []TableNumber{Field, Param, Property},
		TagBits: 2,
	}

	HasCustomAttributeFamily = &CodedIndexFamily{
		Name: "HasCustomAttribute",
		Targets: []TableNumber{
			MethodDef, Field, TypeRef, TypeDef, Param, InterfaceImpl,
			MemberRef, Module, DeclSecurity, Property, Event, StandAloneSig,
			ModuleRef, TypeSpec, Assembly, AssemblyRef, File, ExportedType,
			ManifestResource, GenericParam, GenericParamConstraint, MethodSpec,
		},
		TagBits: 5,
	}

	HasFieldMarshalFamily = &CodedIndexFamily{
		Name:    "HasFieldMarshal",
		Targets: []TableNumber{Field, Param},
		TagBits: 1,
	}

	HasDeclSecurityFamily = &CodedIndexFamily{
		Name:    "HasDeclSecurity",
		Targets: []TableNumber{TypeDef, MethodDef, Assembly},
		TagBits: 2,
	}

	MemberRefParentFamily = &CodedIndexFamily{
		Name:    "MemberRefParent",
		Targets: []TableNumber{TypeDef, TypeRef, ModuleRef, MethodDef, TypeSpec},
		TagBits: 3,
	}

	HasSemanticsFamily = &CodedIndexFamily{
		Name:    "HasSemantics",
		Targets: []TableNumber{Event, Property},
		TagBits: 1,
	}

	MethodDefOrRefFamily = &CodedIndexFamily{
		Name:    "MethodDefOrRef",
		Targets: []TableNumber{MethodDef, MemberRef},
		TagBits: 1,
	}

	MemberForwardedFamily = &CodedIndexFamily{
		Name:    "MemberForwarded",
		Targets: []TableNumber{Field, MethodDef},
		TagBits: 1,
	}

	ImplementationFamily = &CodedIndexFamily{
		Name:    "Implementation",
		Targets: []TableNumber{File, AssemblyRef, ExportedType},
		TagBits: 2,
	}

	// CustomAttributeTypeFamily only assigns tags 2 (MethodDef) and 3
	// (MemberRef); tags 0, 1, 4-7 are reserved by ECMA-335 and never
	// decode to a target.
	CustomAttributeTypeFamily = &CodedIndexFamily{
		Name:    "CustomAttributeType",
		Targets: []TableNumber{NoTarget, NoTarget, MethodDef, MemberRef, NoTarget, NoTarget, NoTarget, NoTarget},
		TagBits: 3,
	}

	ResolutionScopeFamily = &CodedIndexFamily{
		Name:    "ResolutionScope",
		Targets: []TableNumber{Module, ModuleRef, AssemblyRef, TypeRef},
		TagBits: 2,
	}

	TypeOrMethodDefFamily = &CodedIndexFamily{
		Name:    "TypeOrMethodDef",
		Targets: []TableNumber{TypeDef, MethodDef},
		TagBits: 1,
	}
)

// Families lists all 13 coded-index families, in no particular order;
// used by tests and by tools that want to enumerate every family.
var Families = []*CodedIndexFamily{
	TypeDefOrRefFamily,
	HasConstantFamily,
	HasCustomAttributeFamily,
	HasFieldMarshalFamily,
	HasDeclSecurityFamily,
	MemberRefParentFamily,
	HasSemanticsFamily,
	MethodDefOrRefFamily,
	MemberForwardedFamily,
	ImplementationFamily,
	CustomAttributeTypeFamily,
	ResolutionScopeFamily,
	TypeOrMethodDefFamily,
}
