package parser

import (
	"strconv"
	"strings"

	phpast "github.com/VKCOM/php-parser/pkg/ast"
)

// github.com/VKCOM/php-parser gives every binary operator its own vertex
// type (ExprBinaryPlus, ExprBinaryMul, ...) rather than a shared
// Op+Left+Right struct. binaryOp flattens that back into the single
// ast.BinaryOp shape spec.md's node model uses.
type binaryOp struct {
	op          string
	left, right phpast.Vertex
}

func lowerBinaryOp(v phpast.Vertex) (binaryOp, bool) {
	switch n := v.(type) {
	case *phpast.ExprBinaryPlus:
		return binaryOp{"+", n.Left, n.Right}, true
	case *phpast.ExprBinaryMinus:
		return binaryOp{"-", n.Left, n.Right}, true
	case *phpast.ExprBinaryMul:
		return binaryOp{"*", n.Left, n.Right}, true
	case *phpast.ExprBinaryDiv:
		return binaryOp{"/", n.Left, n.Right}, true
	case *phpast.ExprBinaryMod:
		return binaryOp{"%", n.Left, n.Right}, true
	case *phpast.ExprBinaryPow:
		return binaryOp{"**", n.Left, n.Right}, true
	case *phpast.ExprBinaryConcat:
		return binaryOp{".", n.Left, n.Right}, true
	case *phpast.ExprBinaryBooleanAnd:
		return binaryOp{"&&", n.Left, n.Right}, true
	case *phpast.ExprBinaryBooleanOr:
		return binaryOp{"||", n.Left, n.Right}, true
	case *phpast.ExprBinaryLogicalAnd:
		return binaryOp{"and", n.Left, n.Right}, true
	case *phpast.ExprBinaryLogicalOr:
		return binaryOp{"or", n.Left, n.Right}, true
	case *phpast.ExprBinaryLogicalXor:
		return binaryOp{"xor", n.Left, n.Right}, true
	case *phpast.ExprBinaryBitwiseAnd:
		return binaryOp{"&", n.Left, n.Right}, true
	case *phpast.ExprBinaryBitwiseOr:
		return binaryOp{"|", n.Left, n.Right}, true
	case *phpast.ExprBinaryBitwiseXor:
		return binaryOp{"^", n.Left, n.Right}, true
	case *phpast.ExprBinaryShiftLeft:
		return binaryOp{"<<", n.Left, n.Right}, true
	case *phpast.ExprBinaryShiftRight:
		return binaryOp{">>", n.Left, n.Right}, true
	case *phpast.ExprBinaryEqual:
		return binaryOp{"==", n.Left, n.Right}, true
	case *phpast.ExprBinaryNotEqual:
		return binaryOp{"!=", n.Left, n.Right}, true
	case *phpast.ExprBinaryIdentical:
		return binaryOp{"===", n.Left, n.Right}, true
	case *phpast.ExprBinaryNotIdentical:
		return binaryOp{"!==", n.Left, n.Right}, true
	case *phpast.ExprBinaryGreater:
		return binaryOp{">", n.Left, n.Right}, true
	case *phpast.ExprBinaryGreaterOrEqual:
		return binaryOp{">=", n.Left, n.Right}, true
	case *phpast.ExprBinarySmaller:
		return binaryOp{"<", n.Left, n.Right}, true
	case *phpast.ExprBinarySmallerOrEqual:
		return binaryOp{"<=", n.Left, n.Right}, true
	case *phpast.ExprBinarySpaceship:
		return binaryOp{"<=>", n.Left, n.Right}, true
	case *phpast.ExprBinaryCoalesce:
		return binaryOp{"??", n.Left, n.Right}, true
	case *phpast.ExprInstanceOf:
		return binaryOp{"instanceof", n.Expr, n.Class}, true
	default:
		return binaryOp{}, false
	}
}

type augAssignOp struct {
	op           string
	target, value phpast.Vertex
}

func lowerAugAssign(v phpast.Vertex) (augAssignOp, bool) {
	switch n := v.(type) {
	case *phpast.ExprAssignPlus:
		return augAssignOp{"+=", n.Var, n.Expr}, true
	case *phpast.ExprAssignMinus:
		return augAssignOp{"-=", n.Var, n.Expr}, true
	case *phpast.ExprAssignMul:
		return augAssignOp{"*=", n.Var, n.Expr}, true
	case *phpast.ExprAssignDiv:
		return augAssignOp{"/=", n.Var, n.Expr}, true
	case *phpast.ExprAssignMod:
		return augAssignOp{"%=", n.Var, n.Expr}, true
	case *phpast.ExprAssignPow:
		return augAssignOp{"**=", n.Var, n.Expr}, true
	case *phpast.ExprAssignConcat:
		return augAssignOp{".=", n.Var, n.Expr}, true
	case *phpast.ExprAssignBitwiseAnd:
		return augAssignOp{"&=", n.Var, n.Expr}, true
	case *phpast.ExprAssignBitwiseOr:
		return augAssignOp{"|=", n.Var, n.Expr}, true
	case *phpast.ExprAssignBitwiseXor:
		return augAssignOp{"^=", n.Var, n.Expr}, true
	case *phpast.ExprAssignShiftLeft:
		return augAssignOp{"<<=", n.Var, n.Expr}, true
	case *phpast.ExprAssignShiftRight:
		return augAssignOp{">>=", n.Var, n.Expr}, true
	case *phpast.ExprAssignCoalesce:
		return augAssignOp{"??=", n.Var, n.Expr}, true
	default:
		return augAssignOp{}, false
	}
}

// parseInt and parseFloat tolerate the raw lexeme forms PHP allows
// (underscores as digit separators, 0x/0o/0b prefixes) that strconv
// doesn't accept directly.
func parseInt(raw string) int64 {
	clean := strings.ReplaceAll(raw, "_", "")
	if n, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(clean, 0, 64); err == nil {
		return int64(n)
	}
	return 0
}

func parseFloat(raw string) float64 {
	clean := strings.ReplaceAll(raw, "_", "")
	f, _ := strconv.ParseFloat(clean, 64)
	return f
}
