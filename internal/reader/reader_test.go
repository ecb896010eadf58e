package reader

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type collector struct {
	lines []string
}

func (c *collector) Ingest(line string) { c.lines = append(c.lines, line) }

func pump(t *testing.T, input string, f Filter) []string {
	t.Helper()
	src, err := New(strings.NewReader(input), "utf-8")
	require.NoError(t, err)
	c := &collector{}
	require.NoError(t, src.Pump(c, f))
	return c.lines
}

func TestPump_Basic(t *testing.T) {
	require.Equal(t, []string{"b", "a"}, pump(t, "b\na\n", Filter{}))
}

func TestPump_TruncatedFinalLineDiscarded(t *testing.T) {
	require.Equal(t, []string{"a"}, pump(t, "a\nb", Filter{}))
	require.Empty(t, pump(t, "partial", Filter{}))
	require.Empty(t, pump(t, "", Filter{}))
}

func TestPump_CRLF(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, pump(t, "a\r\nb\r\n", Filter{}))
}

func TestPump_EmptyLinesKeptWithoutSkipBlank(t *testing.T) {
	require.Equal(t, []string{"a", "", "b"}, pump(t, "a\n\nb\n", Filter{}))
}

func TestPump_Trim(t *testing.T) {
	require.Equal(t, []string{"a b"}, pump(t, "  a b\t\n", Filter{Trim: true}))
}

func TestPump_SkipBlank(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, pump(t, "a\n   \n\nb\n", Filter{SkipBlank: true}))
}

func TestPump_TrimThenSkipBlank(t *testing.T) {
	// "   " trims to "" which is blank: discarded.
	require.Equal(t, []string{"a"}, pump(t, "   \na\n", Filter{Trim: true, SkipBlank: true}))
}

func TestPump_UTF16LE(t *testing.T) {
	// "hi\nyo\n" in UTF-16LE without BOM.
	raw := []byte{'h', 0, 'i', 0, '\n', 0, 'y', 0, 'o', 0, '\n', 0}
	src, err := New(strings.NewReader(string(raw)), "utf-16le")
	require.NoError(t, err)
	c := &collector{}
	require.NoError(t, src.Pump(c, Filter{}))
	require.Equal(t, []string{"hi", "yo"}, c.lines)
}

func TestPump_UTF8BOMStripped(t *testing.T) {
	require.Equal(t, []string{"first", "second"}, pump(t, "\ufeff"+"first\nsecond\n", Filter{}))
}

func TestPump_Latin1(t *testing.T) {
	// 0xE9 is 'é' in ISO 8859-1.
	src, err := New(strings.NewReader("caf\xe9\n"), "latin-1")
	require.NoError(t, err)
	c := &collector{}
	require.NoError(t, src.Pump(c, Filter{}))
	require.Equal(t, []string{"café"}, c.lines)
}

func TestNew_UnknownEncoding(t *testing.T) {
	_, err := New(strings.NewReader(""), "ebcdic")
	require.Error(t, err)
}

type brokenReader struct {
	data string
	done bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("device gone")
}

func TestPump_ReadFailure(t *testing.T) {
	src, err := New(io.Reader(&brokenReader{data: "ok\nincompl"}), "utf-8")
	require.NoError(t, err)
	c := &collector{}

	err = src.Pump(c, Filter{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "device gone")
	// The complete record before the failure was ingested, the partial
	// one was not.
	require.Equal(t, []string{"ok"}, c.lines)
}
