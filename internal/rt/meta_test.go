package rt

import "testing"

func TestMetaStartsAtOneStrongOneWeak(t *testing.T) {
	m := newMeta()
	if m.loadStrong() != 1 {
		t.Fatalf("expected strong=1, got %d", m.loadStrong())
	}

	if m.weak.Load() != 1 {
		t.Fatalf("expected weak=1, got %d", m.weak.Load())
	}
}

func TestDecStrongReturnsPreDecrementValue(t *testing.T) {
	m := newMeta()
	m.incStrong()

	prev := m.decStrong()
	if prev != 2 {
		t.Fatalf("expected pre-decrement value 2, got %d", prev)
	}

	if m.loadStrong() != 1 {
		t.Fatalf("expected strong=1 after decrement, got %d", m.loadStrong())
	}
}

func TestTryUpgradeFailsAfterZeroStrong(t *testing.T) {
	m := newMeta()
	m.zeroStrong()

	if m.tryUpgrade() {
		t.Fatal("tryUpgrade should fail once strong has been zeroed")
	}
}

func TestTryUpgradeSucceedsWhileStrongPositive(t *testing.T) {
	m := newMeta()

	if !m.tryUpgrade() {
		t.Fatal("tryUpgrade should succeed while strong > 0")
	}

	if m.loadStrong() != 2 {
		t.Fatalf("expected strong=2 after upgrade, got %d", m.loadStrong())
	}
}

func TestWeakCountRoundTrip(t *testing.T) {
	m := newMeta()
	m.incWeak()
	m.incWeak()

	if prev := m.decWeak(); prev != 3 {
		t.Fatalf("expected pre-decrement weak 3, got %d", prev)
	}
}
