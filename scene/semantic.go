package scene

// Semantic is the stable identifier of a built-in operation. It identifies
// an intrinsic independently of the textual signature the call was recorded
// against, which is what makes language-version migration possible.
type Semantic uint32

const (
	// SemanticUnknown marks user-defined functions and materials.
	SemanticUnknown Semantic = iota

	// Unary operators.

	SemanticOperatorPositive
	SemanticOperatorNegative
	SemanticOperatorLogicalNot
	SemanticOperatorComplement

	// Binary operators.

	SemanticOperatorMultiply
	SemanticOperatorDivide
	SemanticOperatorModulo
	SemanticOperatorPlus
	SemanticOperatorMinus
	SemanticOperatorShiftLeft
	SemanticOperatorShiftRight
	SemanticOperatorUnsignedShiftRight
	SemanticOperatorLess
	SemanticOperatorLessEqual
	SemanticOperatorGreater
	SemanticOperatorGreaterEqual
	SemanticOperatorEqual
	SemanticOperatorNotEqual
	SemanticOperatorBitwiseAnd
	SemanticOperatorBitwiseXor
	SemanticOperatorBitwiseOr
	SemanticOperatorLogicalAnd
	SemanticOperatorLogicalOr

	// SemanticOperatorTernary is the conditional operator.
	SemanticOperatorTernary

	// Distribution function intrinsics with migrated signatures.

	SemanticDFMeasuredEDF
	SemanticDFFresnelLayer
	SemanticDFSpotEDF

	// State intrinsics with migrated signatures.

	SemanticStateRoundedCornerNormal

	// Texture intrinsics with migrated signatures.

	SemanticTexWidth
	SemanticTexHeight
	SemanticTexTexelFloat
	SemanticTexTexelFloat2
	SemanticTexTexelFloat3
	SemanticTexTexelFloat4
	SemanticTexTexelColor

	// Pseudo-intrinsics that only exist in graph form and are lowered
	// structurally rather than as calls.

	SemanticDAGFieldAccess
	SemanticDAGIndexAccess
	SemanticDAGArrayConstructor
	SemanticDAGArrayLength

	// Reserved for graph-only annotation nodes; never valid in material
	// expressions.

	SemanticDAGSetObjectID
	SemanticDAGSetTransforms
)

// IsUnaryOperator reports whether s is a unary operator semantic.
func (s Semantic) IsUnaryOperator() bool {
	return s >= SemanticOperatorPositive && s <= SemanticOperatorComplement
}

// IsBinaryOperator reports whether s is a binary operator semantic.
func (s Semantic) IsBinaryOperator() bool {
	return s >= SemanticOperatorMultiply && s <= SemanticOperatorLogicalOr
}

// IsOperator reports whether s denotes a built-in operator, including the
// ternary conditional.
func (s Semantic) IsOperator() bool {
	return s >= SemanticOperatorPositive && s <= SemanticOperatorTernary
}
