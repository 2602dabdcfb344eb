package scheme_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/cscycle/internal/scheme"
)

const roundTripConfig = `# theme switcher
schemes:
  alpha: &alpha
    primary: {background: '#000000'}
  beta: &beta
    primary: {background: '#111111'}
  gamma: &gamma
    primary: {background: '#222222'}

font:
  size: 11.0
colors: *alpha
`

func Test_Cycle_Replaces_Reference_Line_With_Next_Anchor(t *testing.T) {
	t.Parallel()

	doc := scheme.NewDocument([]byte(roundTripConfig))

	change, err := scheme.NewCycler("").Cycle(doc, scheme.Forward)
	require.NoError(t, err)

	require.Equal(t, "alpha", change.From)
	require.Equal(t, "beta", change.To)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, change.Anchors)

	want := strings.Replace(roundTripConfig, "colors: *alpha", "colors: *beta", 1)
	if diff := cmp.Diff(want, string(scheme.JoinLines(change.Lines))); diff != "" {
		t.Errorf("rewritten document mismatch (-want +got):\n%s", diff)
	}
}

func Test_Cycle_Visits_Every_Anchor_And_Returns_To_Start(t *testing.T) {
	t.Parallel()

	cycler := scheme.NewCycler(scheme.DefaultKey)
	content := []byte(roundTripConfig)

	var visited []string

	for range 3 {
		change, err := cycler.Cycle(scheme.NewDocument(content), scheme.Forward)
		require.NoError(t, err)

		visited = append(visited, change.To)
		content = scheme.JoinLines(change.Lines)
	}

	require.Equal(t, []string{"beta", "gamma", "alpha"}, visited)
	require.Equal(t, roundTripConfig, string(content))
}

func Test_Cycle_Backward_Wraps_To_Last(t *testing.T) {
	t.Parallel()

	change, err := scheme.NewCycler("").Cycle(scheme.NewDocument([]byte(roundTripConfig)), scheme.Backward)
	require.NoError(t, err)
	require.Equal(t, "gamma", change.To)
}

func Test_Cycle_Reports_Every_Reference_And_Duplicate(t *testing.T) {
	t.Parallel()

	text := "a: &x 1\nb: &y 2\nc: &x 3\n# colors: *y\ncolors: *x\n"

	change, err := scheme.NewCycler("").Cycle(scheme.NewDocument([]byte(text)), scheme.Forward)
	require.NoError(t, err)

	require.Equal(t, 2, change.ReferenceCount)
	require.Equal(t, []string{"x"}, change.Duplicates)
	require.Equal(t, "y", change.To)
	require.Equal(t, 4, change.Active.Line)
}

func Test_Cycle_Fails_Without_Change(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "MalformedDocument",
			text:    "schemes: [\ncolors: *a\n",
			wantErr: scheme.ErrMalformedDocument,
		},
		{
			name:    "NoReference",
			text:    "a: &a 1\nb: &b 2\n",
			wantErr: scheme.ErrNoActiveScheme,
		},
		{
			name:    "EmptyCatalogWithReference",
			text:    "a: 1\n# colors: *ghost\n",
			wantErr: scheme.ErrAnchorNotInCatalog,
		},
		{
			name:    "ReferenceNotDeclared",
			text:    "a: &alpha 1\nb: &beta 2\ncolors: *alpha\n#colors: *ghost\n",
			wantErr: scheme.ErrAnchorNotInCatalog,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			change, err := scheme.NewCycler("").Cycle(scheme.NewDocument([]byte(testCase.text)), scheme.Forward)
			require.ErrorIs(t, err, testCase.wantErr)
			require.Nil(t, change.Lines)
		})
	}
}

func Test_Cycle_Includes_Reference_Line_When_Anchor_Unknown(t *testing.T) {
	t.Parallel()

	text := "a: &alpha 1\n  #  colors: *ghost\n"

	_, err := scheme.NewCycler("").Cycle(scheme.NewDocument([]byte(text)), scheme.Forward)

	var nErr *scheme.AnchorNotInCatalogError
	require.True(t, errors.As(err, &nErr))
	require.Equal(t, "ghost", nErr.Anchor)
	require.Equal(t, "  #  colors: *ghost", nErr.Line)
	require.Contains(t, err.Error(), "colors: *ghost")
}

func Test_Select_Points_Reference_At_Requested_Anchor(t *testing.T) {
	t.Parallel()

	doc := scheme.NewDocument([]byte(roundTripConfig))

	change, err := scheme.NewCycler("").Select(doc, "gamma")
	require.NoError(t, err)
	require.Equal(t, "colors: *gamma", change.Lines[change.Active.Line])

	_, err = scheme.NewCycler("").Select(doc, "delta")
	require.ErrorIs(t, err, scheme.ErrAnchorNotInCatalog)
}

func Test_Inspect_Uses_Custom_Key(t *testing.T) {
	t.Parallel()

	text := "themes:\n  a: &light {}\n  b: &dark {}\ntheme: *dark\ncolors: *light\n"

	state, err := scheme.NewCycler("theme").Inspect(scheme.NewDocument([]byte(text)))
	require.NoError(t, err)
	require.Equal(t, scheme.Reference{Line: 3, Anchor: "dark"}, state.Active)
	require.Equal(t, 1, state.ReferenceCount)
}
