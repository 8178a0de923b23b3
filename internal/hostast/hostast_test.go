package hostast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/specblock/internal/hostast"
	"github.com/funvibe/specblock/internal/types"
)

func TestStructFieldByName(t *testing.T) {
	s := &hostast.StructDecl{
		Name: "Point",
		Fields: []*hostast.VariableDecl{
			{Name: "x", TypeName: hostast.ElementaryTypeName{Name: "int256"}},
			{Name: "y", TypeName: hostast.ElementaryTypeName{Name: "int256"}},
		},
	}
	require.NotNil(t, s.FieldByName("x"))
	require.Nil(t, s.FieldByName("z"))
	require.Equal(t, "Point", s.DeclName())
}

func TestEnumHasMember(t *testing.T) {
	e := &hostast.EnumDecl{Name: "Color", Members: []string{"Red", "Green", "Blue"}}
	require.True(t, e.HasMember("Green"))
	require.False(t, e.HasMember("Purple"))
	require.Equal(t, "Color", e.DeclName())
}

func TestFunctionDeclIsExternal(t *testing.T) {
	external := &hostast.FunctionDecl{Name: "f", Visibility: types.VisExternal}
	internal := &hostast.FunctionDecl{Name: "g", Visibility: types.VisInternal}
	require.True(t, external.IsExternal())
	require.False(t, internal.IsExternal())
	require.Equal(t, "f", external.CandidateName())
}

func TestGetterCandidateName(t *testing.T) {
	sv := &hostast.VariableDecl{Name: "total"}
	g := &hostast.GetterCandidate{StateVariable: sv}
	require.Equal(t, "total", g.CandidateName())
}
