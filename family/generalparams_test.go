package family_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/frontiergo/frontier/family"
	"github.com/stretchr/testify/require"
)

func TestParseGeneralParams_ParsesAllKeys(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"# comment lines are ignored",
		"degree: 1 0 1",
		"forbidden: 2 3",
		"required: 4 5",
		"comp: [1,2]",
		"elimit: 3",
		"cycle: true",
	}, "\n"))

	f, err := family.ParseGeneralParams(input)
	require.NoError(t, err)
	require.Equal(t, family.IntRange{Lo: 0, Hi: 1}, f.DegreeBound[1])
	require.Equal(t, [][2]int{{2, 3}}, f.Forbidden)
	require.Equal(t, [][2]int{{4, 5}}, f.Required)
	require.Equal(t, family.IntRange{Lo: 1, Hi: 2}, f.ComponentCount)
	require.Equal(t, family.IntRange{Lo: 3, Hi: 3}, f.EdgeCount)
	require.True(t, f.CyclePermitted)
}

func TestParseGeneralParams_RejectsUnknownKey(t *testing.T) {
	_, err := family.ParseGeneralParams(strings.NewReader("bogus: 1"))
	require.True(t, errors.Is(err, family.ErrMalformedParams))
}

func TestParseGeneralParams_RejectsMissingColon(t *testing.T) {
	_, err := family.ParseGeneralParams(strings.NewReader("degree 1 0 1"))
	require.True(t, errors.Is(err, family.ErrMalformedParams))
}
