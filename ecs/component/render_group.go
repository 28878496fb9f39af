package component

import (
	"fmt"
	"math/bits"
)

// RenderGroup buckets entities for cameras and draw order. Only Group0
// through Group31 are valid.
type RenderGroup uint8

const (
	Group0 RenderGroup = iota
	Group1
	Group2
	Group3
	Group4
	Group5
	Group6
	Group7
	Group8
	Group9
	Group10
	Group11
	Group12
	Group13
	Group14
	Group15
	Group16
	Group17
	Group18
	Group19
	Group20
	Group21
	Group22
	Group23
	Group24
	Group25
	Group26
	Group27
	Group28
	Group29
	Group30
	Group31
)

const renderGroupCount = 32

func (g RenderGroup) Valid() bool {
	return g < renderGroupCount
}

func (g RenderGroup) String() string {
	return fmt.Sprintf("Group%d", uint8(g))
}

// Mask returns the single-bit mask for g.
func (g RenderGroup) Mask() RenderGroupMask {
	if !g.Valid() {
		return 0
	}
	return RenderGroupMask(1) << g
}

// RenderGroupMask is a set of render groups, one bit per group.
type RenderGroupMask uint32

const MaskAll = ^RenderGroupMask(0)

func (m RenderGroupMask) Contains(g RenderGroup) bool {
	return g.Valid() && m&g.Mask() != 0
}

func (m RenderGroupMask) With(groups ...RenderGroup) RenderGroupMask {
	for _, g := range groups {
		m |= g.Mask()
	}
	return m
}

func (m RenderGroupMask) Without(groups ...RenderGroup) RenderGroupMask {
	for _, g := range groups {
		m &^= g.Mask()
	}
	return m
}

func (m RenderGroupMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// RenderGroupTag assigns an entity to a render group. The renderer sorts by
// Group before entity id, so lower groups draw underneath.
type RenderGroupTag struct {
	Group RenderGroup
}

var RenderGroupComponent = NewComponent[RenderGroupTag]()
