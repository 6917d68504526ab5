package observ

import (
	"strings"
	"testing"
)

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "37 symbols")
	idx = tm.Begin("match")
	tm.End(idx, "")

	out := tm.Summary()
	for _, want := range []string{"timings:", "parse", "// 37 symbols", "match", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	// Должно быть no-op, без паники.
	tm.End(-1, "")
	tm.End(3, "")
	if got := tm.Summary(); !strings.Contains(got, "total") {
		t.Fatalf("summary without phases should still render a total line:\n%s", got)
	}
}
