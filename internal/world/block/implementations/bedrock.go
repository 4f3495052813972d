package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// BedrockBehavior – дно мира. Добыча на него не действует.
type BedrockBehavior struct{}

func (b *BedrockBehavior) ID() block.BlockID { return block.BedrockBlockID }
func (b *BedrockBehavior) Name() string      { return "bedrock" }

func (b *BedrockBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    true,
		Hardness: block.Indestructible(),
	}
}
