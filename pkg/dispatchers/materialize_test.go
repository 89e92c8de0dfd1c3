package dispatchers

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/serumstudio/hype.cli/pkg/command"
)

func greetDescriptor() *command.Descriptor {
	return &command.Descriptor{
		Name: "greet",
		Options: []command.Option{
			{Flag: "--name", Dest: "name", Required: true, Kind: command.KindString},
			{Flag: "--count", Dest: "count", Default: 1, Kind: command.KindInt},
			{Flag: "--caps", Dest: "caps", Short: "c", Default: false, Kind: command.KindBool},
		},
		Func: func(string, int, bool) {},
	}
}

func TestMaterialize_KindsAndToggles(t *testing.T) {
	m := Materialize(greetDescriptor())

	require.Equal(t, reflect.String, m.Specs["name"].Kind)
	require.Equal(t, reflect.Int, m.Specs["count"].Kind)
	// Boolean options are no-value toggles for the underlying parser.
	require.Equal(t, reflect.Bool, m.Specs["caps"].Kind)
}

func TestMaterialize_ShortAliasSharesDestination(t *testing.T) {
	m := Materialize(greetDescriptor())

	require.Contains(t, m.Specs, "c")
	require.Equal(t, m.Specs["caps"], m.Specs["c"])
	require.Equal(t, "caps", m.Aliases["c"])
}

func TestMaterialize_DestinationStripsFlagPunctuation(t *testing.T) {
	m := Materialize(greetDescriptor())

	for key := range m.Specs {
		require.NotContains(t, key, "-")
	}
}

func TestMaterialize_Idempotent(t *testing.T) {
	d := greetDescriptor()

	first := Materialize(d)
	second := Materialize(d)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated materialization differs (-first +second):\n%s", diff)
	}
	require.Len(t, second.Specs, len(first.Specs), "no duplicate accumulation")
}
