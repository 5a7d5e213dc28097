// Package expr implements the interned expression DAG spec.md §3 describes:
// nodes carry a fixed kind tag and up to two ordered children, and
// structurally identical nodes share one identity. Everything downstream
// (symtab, enc/bool, predicate) consumes *Node and compares by pointer.
package expr

// Kind tags an expression node. The set is fixed and mirrors spec.md §3's
// enumeration: constants, identifiers, arithmetic/bitwise, relational,
// temporal and structural operators.
type Kind int

const (
	// Constants.
	KindBoolConst Kind = iota
	KindIntConst
	KindUWordConst
	KindSWordConst
	KindFracConst
	KindRealConst

	// Identifiers.
	KindName
	KindDotted
	KindBitOf

	// Arithmetic / bitwise.
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindShiftL
	KindShiftR
	KindBitNot
	KindNot
	KindAnd
	KindOr
	KindXor
	KindIff
	KindImplies

	// Relational.
	KindEq
	KindNeq
	KindLt
	KindLe
	KindGt
	KindGe
	KindIn

	// Temporal.
	KindX
	KindG
	KindF
	KindU
	KindS
	KindY
	KindZ
	KindEX
	KindAX
	KindEG
	KindAG
	KindEF
	KindAF
	KindEU
	KindAU

	// Structural.
	KindCons
	KindColon
	KindIfThenElse
	KindCase
	KindNext
	KindInit
	KindContext
	KindArray
	KindWord
	KindBitSelect
	KindCastBool
	KindCastInt
	KindCastSigned
	KindCastUnsigned
	KindConcat
	KindUnion
	KindSetIn
	KindAtTime
)

// IsConstant reports whether k is one of the fixed constant kinds.
func (k Kind) IsConstant() bool {
	return k >= KindBoolConst && k <= KindRealConst
}

// IsTemporal reports whether k is one of the CTL/LTL temporal operators.
func (k Kind) IsTemporal() bool {
	return k >= KindX && k <= KindAU
}

// IsRelational reports whether k is one of the relational operators.
func (k Kind) IsRelational() bool {
	return k >= KindEq && k <= KindIn
}

//go:generate stringer -type=Kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}

var kindNames = map[Kind]string{
	KindBoolConst: "bool-const", KindIntConst: "int-const",
	KindUWordConst: "uword-const", KindSWordConst: "sword-const",
	KindFracConst: "frac-const", KindRealConst: "real-const",
	KindName: "name", KindDotted: "dotted", KindBitOf: "bit-of",
	KindAdd: "+", KindSub: "-", KindMul: "*", KindDiv: "/", KindMod: "mod",
	KindShiftL: "<<", KindShiftR: ">>", KindBitNot: "~", KindNot: "!",
	KindAnd: "&", KindOr: "|", KindXor: "xor", KindIff: "<->", KindImplies: "->",
	KindEq: "=", KindNeq: "!=", KindLt: "<", KindLe: "<=", KindGt: ">", KindGe: ">=", KindIn: "in",
	KindX: "X", KindG: "G", KindF: "F", KindU: "U", KindS: "S", KindY: "Y", KindZ: "Z",
	KindEX: "EX", KindAX: "AX", KindEG: "EG", KindAG: "AG", KindEF: "EF", KindAF: "AF", KindEU: "EU", KindAU: "AU",
	KindCons: "cons", KindColon: ":", KindIfThenElse: "ite", KindCase: "case",
	KindNext: "next", KindInit: "init", KindContext: "context", KindArray: "array",
	KindWord: "word", KindBitSelect: "bit-select", KindCastBool: "cast-bool",
	KindCastInt: "cast-int", KindCastSigned: "cast-signed", KindCastUnsigned: "cast-unsigned",
	KindConcat: "concat", KindUnion: "union", KindSetIn: "set-in", KindAtTime: "at-time",
}
