package surface

import "github.com/google/uuid"

// Container is the region a surface is mounted into.
//
// A container may be detached (not on screen) and is measured once its host
// knows its size. At most one owner may claim it at a time.
type Container struct {
	id       string
	attached bool
	width    int
	height   int
	owner    string
}

func NewContainer() *Container {
	return &Container{id: uuid.NewString()}
}

func (c *Container) ID() string { return c.id }

// Attach marks the container as present and records its size.
func (c *Container) Attach(width, height int) {
	c.attached = true
	c.Resize(width, height)
}

// Detach marks the container as removed. Its claim, if any, is kept until the
// owner vacates it.
func (c *Container) Detach() { c.attached = false }

func (c *Container) Attached() bool { return c != nil && c.attached }

func (c *Container) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
}

func (c *Container) Size() (width, height int) { return c.width, c.height }

// Measured reports whether the container has a non-zero size.
func (c *Container) Measured() bool { return c.width > 0 && c.height > 0 }

// Owner returns the id of the current claimant, or "".
func (c *Container) Owner() string { return c.owner }

// Claim reserves the container for owner. It reports false if another owner
// holds it. Claiming twice with the same owner succeeds.
func (c *Container) Claim(owner string) bool {
	if c.owner != "" && c.owner != owner {
		return false
	}
	c.owner = owner
	return true
}

// Vacate drops owner's claim. Vacating a claim held by someone else is a
// no-op.
func (c *Container) Vacate(owner string) {
	if c.owner == owner {
		c.owner = ""
	}
}
