package plans

import "testing"

func TestByCode(t *testing.T) {
	p, ok := ByCode(2)
	if !ok {
		t.Fatal("plan 2 should exist")
	}
	if p.Code != 2 || p.CheckoutURL == "" {
		t.Errorf("unexpected plan: %+v", p)
	}

	for _, code := range []int{0, -1, 99} {
		if _, ok := ByCode(code); ok {
			t.Errorf("plan %d should not exist", code)
		}
	}
}

func TestAllOrdered(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected configured plans")
	}
	for i, p := range all {
		if p.Code != i+1 {
			t.Errorf("plan at index %d has code %d", i, p.Code)
		}
	}
}
