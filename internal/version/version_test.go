package version

import "testing"

func TestResolve_InjectedVersionWins(t *testing.T) {
	if got := Resolve("v1.2.3"); got != "v1.2.3" {
		t.Errorf("Resolve(v1.2.3) = %q", got)
	}
}

func TestResolve_FallbackNeverEmpty(t *testing.T) {
	if got := Resolve(""); got == "" {
		t.Error("Resolve(\"\") should never return an empty string")
	}
}
