package block

// BlockID представляет идентификатор вида блока
type BlockID uint16

// Константы ID блоков. AirBlockID: пустой тайл.
const (
	AirBlockID         BlockID = iota // 0
	DirtBlockID                       // 1
	GrassBlockID                      // 2
	RockBlockID                       // 3 - природный камень, даёт булыжник
	CobblestoneBlockID                // 4
	WoodBlockID                       // 5
	LeavesBlockID                     // 6
	SandBlockID                       // 7
	BedrockBlockID                    // 8 - неразрушаемый

	BlockCount // всегда последний: количество видов
)

var registry [BlockCount]BlockBehavior

// Register добавляет поведение блока в регистр.
// Паника при ID вне диапазона: это ошибка программиста, а не данных.
func Register(id BlockID, behavior BlockBehavior) {
	if id >= BlockCount {
		panic("block: register of unknown block id")
	}
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	if id >= BlockCount || registry[id] == nil {
		return nil, false
	}
	return registry[id], true
}

// IsValidBlockID проверяет, что ID описывает настоящий (не пустой) блок
func IsValidBlockID(id BlockID) bool {
	_, exists := Get(id)
	return exists && id != AirBlockID
}

// PropertiesOf возвращает статические свойства вида.
// Для незарегистрированных ID возвращаются свойства воздуха.
func PropertiesOf(id BlockID) Properties {
	behavior, exists := Get(id)
	if !exists {
		return airProperties
	}
	return behavior.Properties()
}

// IsSolid сообщает, участвует ли блок в коллизиях
func IsSolid(id BlockID) bool {
	return PropertiesOf(id).Solid
}

// Name возвращает имя вида блока
func Name(id BlockID) string {
	behavior, exists := Get(id)
	if !exists {
		return "unknown"
	}
	return behavior.Name()
}

// ParseName ищет вид блока по имени (регистр важен)
func ParseName(name string) (BlockID, bool) {
	for id := BlockID(0); id < BlockCount; id++ {
		if b := registry[id]; b != nil && b.Name() == name {
			return id, true
		}
	}
	return AirBlockID, false
}

// String реализует fmt.Stringer
func (id BlockID) String() string {
	return Name(id)
}
