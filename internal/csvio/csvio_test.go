package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/keyframe/pkg/frame"
)

func TestRead_SniffsKinds(t *testing.T) {
	in := strings.Join([]string{
		"id,score,name,active",
		"1,1.5,alice,true",
		"2,2,bob,false",
	}, "\n")

	f, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "score", "name", "active"}, f.Names())
	assert.Equal(t, 2, f.NumRows())

	tests := []struct {
		column string
		kind   frame.Kind
	}{
		{"id", frame.KindInt},
		{"score", frame.KindFloat}, // int cells widen to float
		{"name", frame.KindString},
		{"active", frame.KindBool},
	}
	for _, tt := range tests {
		c, err := f.Column(tt.column)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, c.Kind, "column %s", tt.column)
	}
}

func TestRead_EmptyCellsAreMissing(t *testing.T) {
	f, err := Read(strings.NewReader("a,b\n1,x\n,y\n"))
	require.NoError(t, err)

	v, err := f.At(1, 0)
	require.NoError(t, err)
	assert.True(t, v.IsMissing())

	c, err := f.Column("a")
	require.NoError(t, err)
	assert.Equal(t, frame.KindInt, c.Kind, "missing cells must not affect sniffing")
}

func TestRead_MixedFallsBackToString(t *testing.T) {
	f, err := Read(strings.NewReader("a\n1\ntrue\n"))
	require.NoError(t, err)
	c, err := f.Column("a")
	require.NoError(t, err)
	assert.Equal(t, frame.KindString, c.Kind)
}

func TestRead_AllEmptyColumn(t *testing.T) {
	f, err := Read(strings.NewReader("a,b\n1,\n2,\n"))
	require.NoError(t, err)
	c, err := f.Column("b")
	require.NoError(t, err)
	assert.Equal(t, frame.KindString, c.Kind)
	v, err := f.At(0, 1)
	require.NoError(t, err)
	assert.True(t, v.IsMissing())
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	f := frame.MustNew(
		frame.Ints("a", 1, 2),
		frame.Col("b", frame.KindString, frame.String("x"), frame.Missing()),
	)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, f))
	assert.Equal(t, "a,b\n1,x\n2,\n", buf.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.csv")
	assert.Error(t, err)
}
