// Package ast implements the closed AST algebra: one Go type per node
// variant, a Kind enum identifying each variant, and a uniform set of
// per-variant operations (clone, structural compare, debug print,
// formatted print, visitor acceptance, declaration-name lookup, type
// resolution) implemented as
// methods on the concrete node types rather than as a runtime
// function-pointer table — Go's type system already gives "every
// operation either has a total implementation or is statically
// excluded by kind-category flags" for free via the type switches in
// compare.go, declname.go, and resolve.go.
package ast

import "fmt"

// Kind tags one AST node variant.
type Kind int

const (
	KindInvalid Kind = iota

	// Types
	KindTypeVoid
	KindTypeBool
	KindTypeInt
	KindTypeFloat
	KindTypeSymbol
	KindTypePointer
	KindTypeArray
	KindTypeFunction

	// Declarations
	KindDeclUnion
	KindDeclStructure
	KindDeclProperty
	KindDeclInterface
	KindDeclFunctionArgument
	KindDeclFunction
	KindDeclAssignment
	KindDeclBlock

	// Statements
	KindStmtReturn
	KindStmtIfConditionalClause
	KindStmtIf
	KindStmtWhile
	KindStmtBlock

	// Values
	KindValueBool
	KindValueInt
	KindValueFloat
	KindValueCharacter
	KindValueString
	KindValueArray
	KindValueArrayRepeated
	KindValueStructure
	KindValueSymbol
	KindValueCall
	KindValueCallKeywordArgument
	KindValueCast
	KindValueUnary
	KindValueBinary
	KindValueAccess
	KindValueDereference
	KindValueGetAddress

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:                  "invalid",
	KindTypeVoid:                 "type-void",
	KindTypeBool:                 "type-bool",
	KindTypeInt:                  "type-int",
	KindTypeFloat:                "type-float",
	KindTypeSymbol:               "type-symbol",
	KindTypePointer:              "type-pointer",
	KindTypeArray:                "type-array",
	KindTypeFunction:             "type-function",
	KindDeclUnion:                "declaration-union",
	KindDeclStructure:            "declaration-structure",
	KindDeclProperty:             "declaration-property",
	KindDeclInterface:            "declaration-interface",
	KindDeclFunctionArgument:     "declaration-function-argument",
	KindDeclFunction:             "declaration-function",
	KindDeclAssignment:           "declaration-assignment",
	KindDeclBlock:                "declaration-block",
	KindStmtReturn:               "statement-return",
	KindStmtIfConditionalClause:  "statement-if-conditional-clause",
	KindStmtIf:                   "statement-if",
	KindStmtWhile:                "statement-while",
	KindStmtBlock:                "statement-block",
	KindValueBool:                "value-bool",
	KindValueInt:                 "value-int",
	KindValueFloat:               "value-float",
	KindValueCharacter:           "value-character",
	KindValueString:              "value-string",
	KindValueArray:               "value-array",
	KindValueArrayRepeated:       "value-array-repeated",
	KindValueStructure:           "value-structure",
	KindValueSymbol:              "value-symbol",
	KindValueCall:                "value-call",
	KindValueCallKeywordArgument: "value-call-keyword-argument",
	KindValueCast:                "value-cast",
	KindValueUnary:               "value-unary",
	KindValueBinary:              "value-binary",
	KindValueAccess:              "value-access",
	KindValueDereference:         "value-dereference",
	KindValueGetAddress:          "value-get-address",
}

// String returns the node kind's human name, e.g. "value-bool". Used
// by debug-print headers.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Category bit flags, the "flag bits describing category" from the
// node-kind info table.
type Category int

const (
	CategoryType Category = 1 << iota
	CategoryDeclaration
	CategoryStatement
	CategoryValue
	CategoryDeclarable // can be inserted into a scope frame
	CategoryHasOperator
)

var kindCategory = [kindCount]Category{
	KindTypeVoid:     CategoryType,
	KindTypeBool:     CategoryType,
	KindTypeInt:      CategoryType,
	KindTypeFloat:    CategoryType,
	KindTypeSymbol:   CategoryType,
	KindTypePointer:  CategoryType,
	KindTypeArray:    CategoryType,
	KindTypeFunction: CategoryType,

	KindDeclUnion:            CategoryDeclaration | CategoryDeclarable,
	KindDeclStructure:        CategoryDeclaration | CategoryDeclarable,
	KindDeclProperty:         CategoryDeclaration | CategoryDeclarable,
	KindDeclInterface:        CategoryDeclaration | CategoryDeclarable,
	KindDeclFunctionArgument: CategoryDeclaration | CategoryDeclarable,
	KindDeclFunction:         CategoryDeclaration | CategoryDeclarable,
	KindDeclAssignment:       CategoryDeclaration | CategoryDeclarable,
	KindDeclBlock:            CategoryDeclaration,

	KindStmtReturn:              CategoryStatement,
	KindStmtIfConditionalClause: CategoryStatement,
	KindStmtIf:                  CategoryStatement,
	KindStmtWhile:               CategoryStatement,
	KindStmtBlock:               CategoryStatement,

	KindValueBool:                CategoryValue,
	KindValueInt:                 CategoryValue,
	KindValueFloat:               CategoryValue,
	KindValueCharacter:           CategoryValue,
	KindValueString:              CategoryValue,
	KindValueArray:               CategoryValue,
	KindValueArrayRepeated:       CategoryValue,
	KindValueStructure:           CategoryValue,
	KindValueSymbol:              CategoryValue,
	KindValueCall:                CategoryValue,
	KindValueCallKeywordArgument: CategoryValue,
	KindValueCast:                CategoryValue,
	KindValueUnary:               CategoryValue | CategoryHasOperator,
	KindValueBinary:              CategoryValue | CategoryHasOperator,
	KindValueAccess:              CategoryValue,
	KindValueDereference:         CategoryValue | CategoryHasOperator,
	KindValueGetAddress:          CategoryValue | CategoryHasOperator,
}

// Category returns k's category flags.
func (k Kind) Category() Category {
	return kindCategory[k]
}

// Is reports whether all bits in c are set on k's category.
func (k Kind) Is(c Category) bool {
	return k.Category()&c == c
}
