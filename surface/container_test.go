package surface

import "testing"

func TestContainer_AttachDetachAndMeasure(t *testing.T) {
	c := NewContainer()
	if c.ID() == "" {
		t.Fatalf("expected container id")
	}
	if c.Attached() || c.Measured() {
		t.Fatalf("new container must be detached and unmeasured")
	}

	c.Attach(40, 0)
	if !c.Attached() {
		t.Fatalf("expected attached")
	}
	if c.Measured() {
		t.Fatalf("zero height must not count as measured")
	}
	c.Resize(40, -3)
	if w, h := c.Size(); w != 40 || h != 0 {
		t.Fatalf("size: got %dx%d, want 40x0", w, h)
	}
	c.Resize(40, 10)
	if !c.Measured() {
		t.Fatalf("expected measured")
	}

	c.Detach()
	if c.Attached() {
		t.Fatalf("expected detached")
	}

	var nilC *Container
	if nilC.Attached() {
		t.Fatalf("nil container must report detached")
	}
}

func TestContainer_SingleOwnerClaim(t *testing.T) {
	c := NewContainer()
	if !c.Claim("a") {
		t.Fatalf("first claim must succeed")
	}
	if !c.Claim("a") {
		t.Fatalf("repeat claim by same owner must succeed")
	}
	if c.Claim("b") {
		t.Fatalf("claim by second owner must fail while held")
	}

	c.Vacate("b")
	if got := c.Owner(); got != "a" {
		t.Fatalf("vacate by non-owner changed owner: got %q", got)
	}

	c.Vacate("a")
	if !c.Claim("b") {
		t.Fatalf("claim after vacate must succeed")
	}
}
