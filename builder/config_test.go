// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and
// override behavior.
package builder

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// assertPanics runs f and asserts that it panics with a message
// containing wantSubstr.
func assertPanics(t *testing.T, f func(), wantSubstr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", wantSubstr)
			return
		}
		got := fmt.Sprint(r)
		if wantSubstr != "" && !strings.Contains(got, wantSubstr) {
			t.Fatalf("panic mismatch: want substring %q, got %q", wantSubstr, got)
		}
	}()
	f()
}

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if got := cfgDefault.idFn(7); got != "" {
		t.Errorf("default idFn: expected no tag, got %q", got)
	}

	cfgSymbol := newBuilderConfig(WithSymbolIDs())
	if got := cfgSymbol.idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}

	cfgExcel := newBuilderConfig(WithExcelColumnIDs())
	if got := cfgExcel.idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}

	cfgAlpha := newBuilderConfig(WithAlphanumericIDs())
	if got := cfgAlpha.idFn(35); got != "z" {
		t.Errorf("WithAlphanumericIDs: expected \"z\", got %q", got)
	}

	cfgReset := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	if got := cfgReset.idFn(3); got != "" {
		t.Errorf("WithDefaultIDs override: expected no tag, got %q", got)
	}

	assertPanics(t, func() { _ = newBuilderConfig(WithIDScheme(nil)) }, "WithIDScheme(nil)")
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	assertPanics(t, func() { _ = newBuilderConfig(WithRand(nil)) }, "WithRand(nil)")

	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed repeatability: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

func TestPartitionTagOptions(t *testing.T) {
	t.Parallel()

	cfgDefault := newBuilderConfig()
	if cfgDefault.leftPrefix != "L" || cfgDefault.rightPrefix != "R" {
		t.Errorf("default partition prefixes: got (%q,%q), want (\"L\",\"R\")", cfgDefault.leftPrefix, cfgDefault.rightPrefix)
	}

	cfgCustom := newBuilderConfig(WithPartitionTags("Src", "Dst"))
	if cfgCustom.leftPrefix != "Src" || cfgCustom.rightPrefix != "Dst" {
		t.Errorf("WithPartitionTags: got (%q,%q), want (\"Src\",\"Dst\")", cfgCustom.leftPrefix, cfgCustom.rightPrefix)
	}

	cfgEmpty := newBuilderConfig(WithPartitionTags("", ""))
	if cfgEmpty.leftPrefix != "L" || cfgEmpty.rightPrefix != "R" {
		t.Errorf("WithPartitionTags(\"\",\"\"): expected defaults preserved, got (%q,%q)", cfgEmpty.leftPrefix, cfgEmpty.rightPrefix)
	}
}
