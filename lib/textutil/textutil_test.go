package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "technopolisgazi", NormalizeName("  Technopolis \n Gazi\t"))
	require.Equal(t, "ηράκλειο", NormalizeName("Ηράκλειο"))
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("Live Concert Hall", []string{"concert"}))
	require.False(t, MatchName("Gallery Opening", []string{"concert", "sport"}))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "", CleanText("", 500))
	require.Equal(t, "a b c", CleanText("a\n\n b\t\tc", 500))
	require.Equal(t, "it\\'s", CleanText("it's", 500))

	long := strings.Repeat("x", 600)
	out := CleanText(long, 500)
	require.Len(t, []rune(out), 500)
	require.True(t, strings.HasSuffix(out, "..."))

	// greek text must not be cut mid-character
	greek := strings.Repeat("Ω", 600)
	out = CleanText(greek, 500)
	require.Len(t, []rune(out), 500)
	require.Equal(t, strings.Repeat("Ω", 497)+"...", out)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", Truncate("abcdef", 3))
	require.Equal(t, "abc", Truncate("abc", 200))
	require.Equal(t, strings.Repeat("Ω", 200), Truncate(strings.Repeat("Ω", 300), 200))
}
