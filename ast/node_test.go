package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/phpast/ast"
)

func TestScopeDefining(t *testing.T) {
	assert.True(t, ast.ScopeDefining(ast.KindSyntaxTree))
	assert.True(t, ast.ScopeDefining(ast.KindClass))
	assert.True(t, ast.ScopeDefining(ast.KindFunction))
	assert.True(t, ast.ScopeDefining(ast.KindNamespace))
	assert.True(t, ast.ScopeDefining(ast.KindInterface))
	assert.False(t, ast.ScopeDefining(ast.KindIf))
	assert.False(t, ast.ScopeDefining(ast.KindBlock))
}

func TestNodeKindAndLine(t *testing.T) {
	n := ast.NewIntLit(42, 7)
	assert.Equal(t, ast.KindIntLit, n.Kind())
	assert.Equal(t, 42, n.Line())
	assert.Equal(t, int64(7), n.Value)
}

func TestCatchTypeMirrorsFirstAlternative(t *testing.T) {
	c := ast.NewCatch(1, []string{"RuntimeException", "LogicException"}, "e", ast.NewBlock(1, nil))
	assert.Equal(t, "RuntimeException", c.Type)
	assert.Equal(t, []string{"RuntimeException", "LogicException"}, c.Types)
}
