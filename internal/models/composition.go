package models

import "sort"

// CapsuleInstance is one node of a composition tree. IDs are unique
// across the whole tree; diagnostics use them for attribution and dedup.
type CapsuleInstance struct {
	ID        string                       `json:"id" yaml:"id"`
	CapsuleID string                       `json:"capsuleId" yaml:"capsuleId"`
	Props     map[string]any               `json:"props,omitempty" yaml:"props,omitempty"`
	Children  []*CapsuleInstance           `json:"children,omitempty" yaml:"children,omitempty"`
	Slots     map[string][]*CapsuleInstance `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// Visitor receives each instance of a walk together with its nesting depth.
type Visitor func(inst *CapsuleInstance, depth int)

// Walk visits the instance and every descendant exactly once, pre-order,
// depth 0 at the receiver. Children are visited before slots; slots are
// visited in sorted name order so the walk is deterministic.
func (ci *CapsuleInstance) Walk(visit Visitor) {
	ci.walk(0, visit)
}

func (ci *CapsuleInstance) walk(depth int, visit Visitor) {
	visit(ci, depth)
	for _, child := range ci.Children {
		child.walk(depth+1, visit)
	}
	for _, name := range ci.SlotNames() {
		for _, inst := range ci.Slots[name] {
			inst.walk(depth+1, visit)
		}
	}
}

// SlotNames returns the instance's slot names in sorted order.
func (ci *CapsuleInstance) SlotNames() []string {
	if len(ci.Slots) == 0 {
		return nil
	}
	names := make([]string, 0, len(ci.Slots))
	for name := range ci.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AppComposition is the unit of compilation: a capsule tree (and/or a
// flat capsule list), a theme, and the list of target platforms. It is
// immutable input to a compile call.
type AppComposition struct {
	Name           string                      `json:"name" yaml:"name"`
	Description    string                      `json:"description,omitempty" yaml:"description,omitempty"`
	Version        string                      `json:"version,omitempty" yaml:"version,omitempty"`
	Targets        []Platform                  `json:"targets,omitempty" yaml:"targets,omitempty"`
	Root           *CapsuleInstance            `json:"root,omitempty" yaml:"root,omitempty"`
	Capsules       []*CapsuleInstance          `json:"capsules,omitempty" yaml:"capsules,omitempty"`
	Theme          ThemeConfig                 `json:"theme,omitempty" yaml:"theme,omitempty"`
	PlatformConfig map[Platform]map[string]any `json:"platformConfig,omitempty" yaml:"platformConfig,omitempty"`
}

// Roots returns the top-level instances to render: the root tree when
// present, otherwise the flat capsule list as root-level siblings.
func (c *AppComposition) Roots() []*CapsuleInstance {
	if c.Root != nil {
		return []*CapsuleInstance{c.Root}
	}
	return c.Capsules
}

// UsedCapsules returns the sorted set of distinct capsule type ids the
// composition actually references. The flat capsule list is authoritative
// when present; otherwise the set is derived by walking the root tree.
// Compilers use it to prune unused imports and dependencies from
// generated output.
func (c *AppComposition) UsedCapsules() []string {
	scope := c.Capsules
	if len(scope) == 0 && c.Root != nil {
		scope = []*CapsuleInstance{c.Root}
	}
	seen := make(map[string]struct{})
	for _, root := range scope {
		root.Walk(func(inst *CapsuleInstance, _ int) {
			seen[inst.CapsuleID] = struct{}{}
		})
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
