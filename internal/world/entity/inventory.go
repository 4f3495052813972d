package entity

import "github.com/annel0/tile-sandbox/internal/world/block"

// Hotbar: порядок слотов панели быстрого доступа
var Hotbar = [...]block.BlockID{
	block.DirtBlockID,
	block.GrassBlockID,
	block.RockBlockID,
	block.WoodBlockID,
	block.LeavesBlockID,
	block.SandBlockID,
	block.BedrockBlockID,
	block.CobblestoneBlockID,
}

// HotbarSize: количество слотов
const HotbarSize = len(Hotbar)

// Inventory хранит по одному счётчику на вид блока. Счётчики никогда не уходят в минус.
type Inventory struct {
	counts [block.BlockCount]int
}

// Count возвращает количество блоков вида id
func (inv *Inventory) Count(id block.BlockID) int {
	if id >= block.BlockCount {
		return 0
	}
	return inv.counts[id]
}

// Add добавляет n блоков вида id. Воздух и неизвестные виды игнорируются.
func (inv *Inventory) Add(id block.BlockID, n int) {
	if n <= 0 || id == block.AirBlockID || id >= block.BlockCount {
		return
	}
	inv.counts[id] += n
}

// Take забирает один блок; false, если блоков нет
func (inv *Inventory) Take(id block.BlockID) bool {
	if inv.Count(id) <= 0 {
		return false
	}
	inv.counts[id]--
	return true
}

// Snapshot возвращает счётчики в порядке слотов
func (inv *Inventory) Snapshot() [HotbarSize]int {
	var out [HotbarSize]int
	for i, id := range Hotbar {
		out[i] = inv.counts[id]
	}
	return out
}

// Total возвращает суммарное число блоков
func (inv *Inventory) Total() int {
	total := 0
	for _, n := range inv.counts {
		total += n
	}
	return total
}
