package vars

import (
	"errors"
	"reflect"
	"testing"
)

func TestExpandStringResolvesNestedPaths(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(NewTreeProvider("vars", map[string]any{
		"brand": map[string]any{
			"primary": "#003366",
			"sizes":   map[string]any{"title": 18},
		},
	}))

	out, err := resolver.ExpandString("color: ${brand.primary}, size ${ brand.sizes.title }px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "color: #003366, size 18px" {
		t.Fatalf("unexpected expansion %q", out)
	}
}

func TestExpandStringLeavesUnresolvedTokens(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(NewTreeProvider("vars", map[string]any{
		"a": map[string]any{"b": "ok"},
	}))

	out, err := resolver.ExpandString("${a.b}/${a.b.c}/${missing}")
	if out != "ok/${a.b.c}/${missing}" {
		t.Fatalf("expected unresolved tokens echoed back, got %q", out)
	}
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	var unresolved *UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected *UnresolvedError, got %T", err)
	}
	if !reflect.DeepEqual(unresolved.Names, []string{"a.b.c", "missing"}) {
		t.Fatalf("unexpected unresolved names %v", unresolved.Names)
	}
}

func TestExpandStringMapValueIsUnresolved(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(NewTreeProvider("vars", map[string]any{
		"brand": map[string]any{"primary": "#fff"},
	}))
	out, err := resolver.ExpandString("${brand}")
	if err == nil {
		t.Fatalf("expected error when a path points at a section")
	}
	if out != "${brand}" {
		t.Fatalf("unexpected expansion %q", out)
	}
}

func TestResolveWithProviderLabel(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(
		NewMapProvider("palette", map[string]string{"Accent": "#FCBA19"}),
	)
	value, ok := resolver.Resolve("palette.accent")
	if !ok || value != "#FCBA19" {
		t.Fatalf("expected labelled lookup to resolve, got %v (ok=%v)", value, ok)
	}
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("WALLET_BRAND", "#123456")

	resolver := NewResolver(EnvProvider{})
	out, err := resolver.ExpandString("${env.wallet_brand}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "#123456" {
		t.Fatalf("expected env value, got %q", out)
	}
}

func TestSubstituteWalksNestedValues(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(NewTreeProvider("vars", map[string]any{
		"colors":  map[string]any{"primary": "#111111"},
		"opacity": 0.5,
		"round":   true,
	}))

	input := map[string]any{
		"card_themes": []any{
			map[string]any{
				"id":    "c1",
				"style": map[string]any{"colors": map[string]any{"primary": "${colors.primary}"}},
			},
		},
		"image": map[string]any{
			"opacity": "${opacity}",
			"label":   "alpha ${opacity}",
			"rounded": "${round}",
			"missing": "${nope.nope}",
		},
		"count": 3,
	}

	out, err := resolver.Substitute(input)
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected unresolved error for nope.nope, got %v", err)
	}

	root := out.(map[string]any)
	cards := root["card_themes"].([]any)
	style := cards[0].(map[string]any)["style"].(map[string]any)
	if got := style["colors"].(map[string]any)["primary"]; got != "#111111" {
		t.Fatalf("unexpected nested primary %v", got)
	}
	image := root["image"].(map[string]any)
	if got, ok := image["opacity"].(float64); !ok || got != 0.5 {
		t.Fatalf("expected typed opacity 0.5, got %#v", image["opacity"])
	}
	if got := image["label"]; got != "alpha 0.5" {
		t.Fatalf("unexpected label %v", got)
	}
	if got, ok := image["rounded"].(bool); !ok || !got {
		t.Fatalf("expected typed bool, got %#v", image["rounded"])
	}
	if got := image["missing"]; got != "${nope.nope}" {
		t.Fatalf("expected unresolved token kept, got %v", got)
	}
	if root["count"] != 3 {
		t.Fatalf("expected non-string values untouched, got %v", root["count"])
	}
	if input["image"].(map[string]any)["opacity"] != "${opacity}" {
		t.Fatalf("input must not be modified")
	}
}
