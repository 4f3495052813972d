package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// WoodBehavior – ствол дерева. Ствол и листва не твёрдые:
// игрок проходит сквозь дерево, но может его срубить.
type WoodBehavior struct{}

func (b *WoodBehavior) ID() block.BlockID { return block.WoodBlockID }
func (b *WoodBehavior) Name() string      { return "wood" }

func (b *WoodBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    false,
		Hardness: block.Breakable(25),
		Drop:     block.WoodBlockID,
		HasDrop:  true,
	}
}

// LeavesBehavior – листва кроны, ломается почти мгновенно и ничего не оставляет.
type LeavesBehavior struct{}

func (b *LeavesBehavior) ID() block.BlockID { return block.LeavesBlockID }
func (b *LeavesBehavior) Name() string      { return "leaves" }

func (b *LeavesBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    false,
		Hardness: block.Breakable(5),
	}
}
