package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	for _, behavior := range []block.BlockBehavior{
		&AirBehavior{},
		&DirtBehavior{},
		&GrassBehavior{},
		&RockBehavior{},
		&CobblestoneBehavior{},
		&WoodBehavior{},
		&LeavesBehavior{},
		&SandBehavior{},
		&BedrockBehavior{},
	} {
		block.Register(behavior.ID(), behavior)
	}
}
