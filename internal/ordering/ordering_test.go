package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicy_Lexicographic(t *testing.T) {
	p := New(Lexicographic, false)
	require.True(t, p.Less("a", "b"))
	require.False(t, p.Less("b", "a"))
	require.Zero(t, p.Compare("a", "a"))
	// Byte-wise: digits compare as characters, so "10" < "9".
	require.True(t, p.Less("file10", "file9"))
	// Case matters: upper case ASCII sorts before lower case.
	require.True(t, p.Less("B", "a"))
}

func TestPolicy_CaseInsensitive(t *testing.T) {
	p := New(CaseInsensitive, false)
	require.Zero(t, p.Compare("Hello", "hELLO"))
	require.True(t, p.Less("alpha", "Beta"))
	require.True(t, p.Less("a", "ab"))
}

func TestPolicy_Natural(t *testing.T) {
	p := New(Natural, false)
	require.True(t, p.Less("file2", "file10"))
	require.False(t, p.Less("File2", "file2")) // case still significant
	require.NotZero(t, p.Compare("File2", "file2"))
}

func TestPolicy_NaturalCaseInsensitive(t *testing.T) {
	p := New(NaturalCaseInsensitive, false)
	require.Zero(t, p.Compare("File2", "file2"))
	require.True(t, p.Less("FILE2", "file10"))
}

func TestPolicy_ReverseNegatesAscending(t *testing.T) {
	asc := New(Natural, false)
	desc := New(Natural, true)
	require.Equal(t, asc.Compare("file2", "file10"), -desc.Compare("file2", "file10"))
	require.True(t, desc.Less("file10", "file2"))
	require.Zero(t, desc.Compare("same", "same"))
}

func TestNewLocale_NumericOrdering(t *testing.T) {
	p, err := NewLocale("en", false, false)
	require.NoError(t, err)
	require.True(t, p.Less("item2", "item10"))
	require.True(t, p.Less("item1", "item2"))
}

func TestNewLocale_Fold(t *testing.T) {
	p, err := NewLocale("en", true, false)
	require.NoError(t, err)
	require.Zero(t, p.Compare("Item2", "item2"))
}

func TestNewLocale_InvalidTag(t *testing.T) {
	_, err := NewLocale("not a tag!", false, false)
	require.Error(t, err)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "natural", Natural.String())
	require.Equal(t, "locale", LocaleLogical.String())
}
