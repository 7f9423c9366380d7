package policies

import "testing"

func TestNegFreqPunishesRevisits(t *testing.T) {
	p := NewSoftMaxNegFreqPolicy(0.5, 1, 1, false)
	s := sState{name: "s"}
	ns := sState{name: "n"}

	p.Update(0, s, sAction("right"), ns, 0)
	if p.Freq["n"] != 1 {
		t.Errorf("expected one visit of n, got %d", p.Freq["n"])
	}
	first := p.QTable["s"]["right"]
	if first != -0.5 {
		t.Errorf("expected value -0.5 after the first visit, got %f", first)
	}

	p.Update(1, s, sAction("right"), ns, 0)
	if p.Freq["n"] != 2 {
		t.Errorf("expected two visits of n, got %d", p.Freq["n"])
	}
	second := p.QTable["s"]["right"]
	if second >= first {
		t.Errorf("expected the value to keep dropping, got %f after %f", second, first)
	}
}

func TestNegFreqReset(t *testing.T) {
	p := NewSoftMaxNegFreqPolicy(0.5, 1, 1, false)
	p.Update(0, sState{name: "s"}, sAction("right"), sState{name: "n"}, 0)
	p.Reset()
	if len(p.Freq) != 0 || len(p.QTable) != 0 {
		t.Errorf("expected empty tables after reset")
	}
}
