package identity

import "testing"

func TestNextIsMonotonicPerKind(t *testing.T) {
	a := NewAllocator()

	if got := a.Next(KindProduct); got != 1 {
		t.Fatalf("first product ID = %d, want 1", got)
	}
	if got := a.Next(KindProduct); got != 2 {
		t.Fatalf("second product ID = %d, want 2", got)
	}

	if got := a.Next(KindOrder); got != 1 {
		t.Errorf("first order ID = %d, want 1 (sequences are independent)", got)
	}
	if got := a.Next(KindOrderItem); got != 1 {
		t.Errorf("first order item ID = %d, want 1", got)
	}
	if got := a.Next(KindCustomer); got != 1 {
		t.Errorf("first customer ID = %d, want 1", got)
	}

	if got := a.Next(KindProduct); got != 3 {
		t.Errorf("third product ID = %d, want 3", got)
	}
}

func TestClaimAdvancesSequence(t *testing.T) {
	a := NewAllocator()

	a.Claim(KindProduct, 40)
	if got := a.Next(KindProduct); got != 41 {
		t.Fatalf("Next after Claim(40) = %d, want 41", got)
	}

	// Claiming an ID the sequence already passed changes nothing.
	a.Claim(KindProduct, 10)
	if got := a.Next(KindProduct); got != 42 {
		t.Errorf("Next after stale claim = %d, want 42", got)
	}
}
