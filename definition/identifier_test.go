package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphfsm/definition"
)

func TestIdentifier_StringAndParse(t *testing.T) {
	cases := []struct {
		id   definition.Identifier
		want string
	}{
		{definition.Dir, "dir"},
		{definition.Add, "add"},
		{definition.Mul, "mul"},
		{definition.Div, "div"},
		{definition.Sub, "sub"},
		{definition.Assign, "assign"},
		{definition.Pic, "pic"},
		{definition.Custom(0), "custom(0)"},
		{definition.Custom(12), "custom(12)"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.id.String())
			got, err := definition.ParseIdentifier(tc.want)
			require.NoError(t, err)
			assert.Equal(t, tc.id, got)
		})
	}

	got, err := definition.ParseIdentifier(" ADD ")
	require.NoError(t, err)
	assert.Equal(t, definition.Add, got)

	got, err = definition.ParseIdentifier("custom")
	require.NoError(t, err)
	assert.Equal(t, definition.Custom(0), got)

	for _, bad := range []string{"", "plus", "custom(-1)", "custom(x)"} {
		_, err = definition.ParseIdentifier(bad)
		assert.ErrorIs(t, err, definition.ErrUnknownIdentifier, bad)
	}
}

func TestIdentifier_Custom(t *testing.T) {
	n, ok := definition.Custom(4).CustomIndex()
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = definition.Pic.CustomIndex()
	assert.False(t, ok)
	assert.NotEqual(t, definition.Custom(1), definition.Custom(2))
}

func TestIdentifier_Text(t *testing.T) {
	b, err := definition.Mul.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "mul", string(b))

	var id definition.Identifier
	require.NoError(t, id.UnmarshalText([]byte("custom(3)")))
	assert.Equal(t, definition.Custom(3), id)
	assert.Error(t, id.UnmarshalText([]byte("nope")))
}
