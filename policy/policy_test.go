package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spdxexpr "github.com/gospdx/expr"
)

func TestLoadDefaultsToStrict(t *testing.T) {
	p, err := Load(strings.NewReader(`
accepted:
  - MIT
  - Apache-2.0
`))
	require.NoError(t, err)
	assert.Equal(t, spdxexpr.Strict(), p.Mode)
	assert.Len(t, p.Accepted, 2)
}

func TestLoadLaxMode(t *testing.T) {
	p, err := Load(strings.NewReader(`
mode: lax
accepted:
  - gpl-2.0+
`))
	require.NoError(t, err)
	assert.Equal(t, spdxexpr.Lax(), p.Mode)
	assert.Len(t, p.Accepted, 1)
}

func TestLoadInvalidMode(t *testing.T) {
	_, err := Load(strings.NewReader(`
mode: yolo
accepted: [MIT]
`))
	assert.Error(t, err)
}

func TestLoadRejectsCompoundAcceptedEntry(t *testing.T) {
	_, err := Load(strings.NewReader(`
accepted:
  - "MIT OR Apache-2.0"
`))
	assert.Error(t, err, "accepted entries must be single licensees")
}

func TestPolicyPredicate(t *testing.T) {
	p, err := Load(strings.NewReader(`
accepted:
  - MIT
`))
	require.NoError(t, err)

	expr, err := spdxexpr.Parse("MIT OR GPL-2.0-only", spdxexpr.Strict())
	require.NoError(t, err)

	assert.True(t, expr.Evaluate(p.Predicate()))
}
