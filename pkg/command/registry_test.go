package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func desc(name string, aliases ...string) *Descriptor {
	return &Descriptor{
		Name:    name,
		Aliases: aliases,
		Func:    func() {},
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(desc("greet"))

	d, ok := r.Lookup("greet")
	require.True(t, ok)
	require.Equal(t, "greet", d.Name)

	_, ok = r.Lookup("missing")
	require.False(t, ok)
}

func TestRegistry_OverwriteIsSilent(t *testing.T) {
	r := NewRegistry()

	first := desc("greet")
	first.Help = "first"
	second := desc("greet")
	second.Help = "second"

	r.Register(first)
	r.Register(second)

	// Last write wins; only the second descriptor is retrievable.
	d, ok := r.Lookup("greet")
	require.True(t, ok)
	require.Equal(t, "second", d.Help)
	require.Equal(t, 1, r.Len())
}

func TestRegistry_OverwriteKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(desc("alpha"))
	r.Register(desc("beta"))
	r.Register(desc("alpha"))

	require.Equal(t, []string{"alpha", "beta"}, r.Names())
}

func TestRegistry_ResolveAlias(t *testing.T) {
	r := NewRegistry()
	r.Register(desc("greet", "hello", "hi"))

	d, ok := r.Resolve("hello")
	require.True(t, ok)
	require.Equal(t, "greet", d.Name)

	d, ok = r.Resolve("hi")
	require.True(t, ok)
	require.Equal(t, "greet", d.Name)

	_, ok = r.Resolve("goodbye")
	require.False(t, ok)
}

func TestRegistry_PrimaryNameShadowsAlias(t *testing.T) {
	r := NewRegistry()
	r.Register(desc("greet", "version"))
	r.Register(desc("version"))

	d, ok := r.Resolve("version")
	require.True(t, ok)
	require.Equal(t, "version", d.Name)
}

func TestRegistry_AllPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(desc("charlie"))
	r.Register(desc("alpha"))
	r.Register(desc("beta"))

	var names []string
	for _, d := range r.All() {
		names = append(names, d.Name)
	}
	require.Equal(t, []string{"charlie", "alpha", "beta"}, names)
}

func TestDescriptor_OptionByDest(t *testing.T) {
	d := &Descriptor{
		Name: "greet",
		Options: []Option{
			{Flag: "--name", Dest: "name", Required: true, Kind: KindString},
			{Flag: "--caps", Dest: "caps", Default: false, Kind: KindBool},
		},
	}

	opt, ok := d.OptionByDest("caps")
	require.True(t, ok)
	require.Equal(t, "--caps", opt.Flag)

	_, ok = d.OptionByDest("missing")
	require.False(t, ok)
}
