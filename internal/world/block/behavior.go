package block

// Hardness: порог накопленного урона, после которого блок разрушается.
// Неразрушаемые блоки помечаются явно, без сравнения с бесконечностью.
type Hardness struct {
	value          float64
	indestructible bool
}

// Breakable создаёт конечную прочность
func Breakable(value float64) Hardness {
	return Hardness{value: value}
}

// Indestructible создаёт прочность блока, который нельзя разрушить добычей
func Indestructible() Hardness {
	return Hardness{indestructible: true}
}

// IsIndestructible возвращает true для неразрушаемых блоков
func (h Hardness) IsIndestructible() bool {
	return h.indestructible
}

// Value возвращает порог прочности; для неразрушаемых блоков 0
func (h Hardness) Value() float64 {
	return h.value
}

// Reached проверяет, достаточно ли накопленного урона для разрушения
func (h Hardness) Reached(progress float64) bool {
	return !h.indestructible && progress >= h.value
}

// Ratio возвращает долю накопленного урона в [0,1]
func (h Hardness) Ratio(progress float64) float64 {
	if h.indestructible || h.value <= 0 {
		return 0
	}
	r := progress / h.value
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// Properties: статические свойства вида блока
type Properties struct {
	Solid    bool     // Участвует в коллизиях игрока и предметов
	Hardness Hardness // Прочность при добыче
	Drop     BlockID  // Что выпадает при разрушении
	HasDrop  bool     // false: блок ничего не оставляет
}

var airProperties = Properties{Hardness: Indestructible()}

// BlockBehavior определяет поведение блока
type BlockBehavior interface {
	ID() BlockID
	Name() string
	Properties() Properties
}
