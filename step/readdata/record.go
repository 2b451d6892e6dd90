package readdata

// ParamKind classifies an argument lexically. It mirrors the parameter
// types of the STEP physical file: the builder tags values, it does not
// validate them against any entity schema.
type ParamKind int

const (
	ParamMisc ParamKind = iota // error placeholder
	ParamInteger
	ParamReal
	ParamIdent // entity reference, #123
	ParamVoid  // omitted value, $
	ParamText
	ParamEnum
	ParamLogical
	ParamSub // marker referencing a synthetic sub-record
	ParamHexa
	ParamBinary
)

var paramKindNames = map[ParamKind]string{
	ParamMisc:    "Misc",
	ParamInteger: "Integer",
	ParamReal:    "Real",
	ParamIdent:   "Ident",
	ParamVoid:    "Void",
	ParamText:    "Text",
	ParamEnum:    "Enum",
	ParamLogical: "Logical",
	ParamSub:     "Sub",
	ParamHexa:    "Hexa",
	ParamBinary:  "Binary",
}

func (k ParamKind) String() string {
	if name, ok := paramKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// record is one entity read from the file. Records chain into a flat,
// file-ordered list through next; a synthetic sub-record spawned by one of
// its arguments hangs off sub and always precedes it in the flat list.
type record struct {
	ident   TextRef
	typ     TextRef
	argHead ref // argument chain, insertion order
	argTail ref
	next    ref // flat list
	sub     ref
	num     int32 // 1-based ordinal in the flat list, 0 until finalized
}

type argument struct {
	kind  ParamKind
	value TextRef
	next  ref
}

// scopeFrame remembers the record that was current when a nested construct
// opened. Frames pushed by BeginSubRecord are marked so FinalizeRecord pops
// only its own frames, never one opened by OpenScope.
type scopeFrame struct {
	anchor    ref
	subRecord bool
}
