package slide

import (
	"errors"
	"testing"
	"time"
)

func mustController(t *testing.T, length int, opts ...Option) *Controller {
	t.Helper()
	c, err := New(length, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", length, err)
	}
	return c
}

func step(t *testing.T, c *Controller, dir Direction) Transition {
	t.Helper()
	tr, ok := c.Advance(dir)
	if !ok {
		t.Fatalf("Advance(%s) dropped while unlocked", dir)
	}
	if !c.Release(tr.Epoch) {
		t.Fatalf("Release(%d) did not unlock", tr.Epoch)
	}
	return tr
}

func TestNewRejectsEmpty(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := New(n); !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("New(%d): expected ErrEmptyCatalog, got %v", n, err)
		}
	}
}

func TestInitialState(t *testing.T) {
	c := mustController(t, 3)
	if c.Current() != 0 || c.Locked() || c.State() != Unlocked {
		t.Fatalf("unexpected initial state: index=%d locked=%v", c.Current(), c.Locked())
	}
	if c.Cooldown() != DefaultCooldown {
		t.Fatalf("expected default cooldown, got %v", c.Cooldown())
	}
}

func TestAdvanceWrapsInBothDirections(t *testing.T) {
	c := mustController(t, 3)
	for _, want := range []int{1, 2, 0} {
		step(t, c, Next)
		if c.Current() != want {
			t.Fatalf("Next: expected %d, got %d", want, c.Current())
		}
	}
	step(t, c, Previous)
	if c.Current() != 2 {
		t.Fatalf("Previous from 0: expected 2, got %d", c.Current())
	}
}

func TestIndexStaysInRangeForMixedSequences(t *testing.T) {
	for length := 1; length <= 5; length++ {
		c := mustController(t, length)
		dirs := []Direction{Previous, Previous, Next, Previous, Previous, Previous, Next, Next, Previous}
		for i, dir := range dirs {
			step(t, c, dir)
			if got := c.Current(); got < 0 || got >= length {
				t.Fatalf("length %d step %d: index %d out of range", length, i, got)
			}
		}
	}
}

func TestSingleSlideCyclesToItself(t *testing.T) {
	c := mustController(t, 1)
	tr := step(t, c, Next)
	if tr.From != 0 || tr.To != 0 {
		t.Fatalf("expected 0→0 transition, got %+v", tr)
	}
	step(t, c, Previous)
	if c.Current() != 0 {
		t.Fatalf("expected index 0, got %d", c.Current())
	}
}

func TestLockSuppressesRequestsUntilRelease(t *testing.T) {
	c := mustController(t, 3)
	first, ok := c.Advance(Next)
	if !ok {
		t.Fatalf("first Advance dropped")
	}
	for i := 1; i <= 9; i++ {
		if _, ok := c.Advance(Next); ok {
			t.Fatalf("Advance %d accepted while locked", i)
		}
		if _, ok := c.Select(2); ok {
			t.Fatalf("Select accepted while locked")
		}
	}
	if c.Current() != 1 {
		t.Fatalf("expected exactly one index change, got index %d", c.Current())
	}
	c.Release(first.Epoch)
	if _, ok := c.Advance(Next); !ok {
		t.Fatalf("Advance after cooldown dropped")
	}
	if c.Current() != 2 {
		t.Fatalf("expected index 2, got %d", c.Current())
	}
}

func TestSelectSetsIndexDirectly(t *testing.T) {
	c := mustController(t, 5)
	for _, target := range []int{3, 0, 4, 4, 1} {
		tr, ok := c.Select(target)
		if !ok {
			t.Fatalf("Select(%d) dropped", target)
		}
		if c.Current() != target || tr.To != target {
			t.Fatalf("Select(%d): got index %d transition %+v", target, c.Current(), tr)
		}
		if !c.Locked() {
			t.Fatalf("Select(%d) did not engage the lock", target)
		}
		c.Release(tr.Epoch)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	c := mustController(t, 3)
	tr, _ := c.Advance(Next)
	if !c.Release(tr.Epoch) {
		t.Fatalf("first release should unlock")
	}
	if c.Release(tr.Epoch) {
		t.Fatalf("second release must not report a change")
	}
	if c.Locked() || c.Current() != 1 {
		t.Fatalf("unexpected state after duplicate release: locked=%v index=%d", c.Locked(), c.Current())
	}
}

func TestStaleReleaseDoesNotUnlockNewerTransition(t *testing.T) {
	c := mustController(t, 3)
	first, _ := c.Advance(Next)
	c.Release(first.Epoch)
	second, _ := c.Advance(Next)
	if c.Release(first.Epoch) {
		t.Fatalf("stale epoch released a newer cooldown")
	}
	if !c.Locked() {
		t.Fatalf("controller unlocked by stale release")
	}
	if !c.Release(second.Epoch) {
		t.Fatalf("current epoch failed to release")
	}
}

func TestTransitionCarriesCooldown(t *testing.T) {
	c := mustController(t, 2, WithCooldown(250*time.Millisecond))
	tr, _ := c.Advance(Previous)
	if tr.Cooldown != 250*time.Millisecond {
		t.Fatalf("expected 250ms cooldown, got %v", tr.Cooldown)
	}
	if tr.From != 0 || tr.To != 1 {
		t.Fatalf("unexpected transition %+v", tr)
	}
}

func TestWithCooldownIgnoresNonPositive(t *testing.T) {
	c := mustController(t, 2, WithCooldown(0))
	if c.Cooldown() != DefaultCooldown {
		t.Fatalf("expected default cooldown, got %v", c.Cooldown())
	}
}

func TestIsActive(t *testing.T) {
	c := mustController(t, 3)
	c.Select(2)
	for i := 0; i < 3; i++ {
		if got := c.IsActive(i); got != (i == 2) {
			t.Fatalf("IsActive(%d) = %v", i, got)
		}
	}
}
