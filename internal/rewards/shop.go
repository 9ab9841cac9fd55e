package rewards

import "wellmind/internal/pet"

// ItemKind is the category of a shop item.
type ItemKind string

const (
	KindSkin      ItemKind = "skin"
	KindAccessory ItemKind = "accessory"
)

// ShopItem is a cosmetic for sale.
type ShopItem struct {
	ID    string
	Name  string
	Icon  string
	Kind  ItemKind
	Value string
	Price int
}

// Shop is the cosmetic catalog.
var Shop = []ShopItem{
	{"skin_golden", "Golden Glow", "✨", KindSkin, string(pet.SkinGolden), 100},
	{"skin_rainbow", "Rainbow Dream", "🌈", KindSkin, string(pet.SkinRainbow), 150},
	{"skin_ninja", "Shadow Ninja", "🥷", KindSkin, string(pet.SkinNinja), 200},
	{"skin_angel", "Angel Wings", "😇", KindSkin, string(pet.SkinAngel), 250},
	{"skin_devil", "Little Devil", "😈", KindSkin, string(pet.SkinDevil), 250},
	{"acc_hat", "Top Hat", "🎩", KindAccessory, string(pet.AccessoryHat), 50},
	{"acc_glasses", "Cool Shades", "🕶️", KindAccessory, string(pet.AccessoryGlasses), 60},
	{"acc_bowtie", "Cute Bowtie", "🎀", KindAccessory, string(pet.AccessoryBowtie), 40},
	{"acc_crown", "Royal Crown", "👑", KindAccessory, string(pet.AccessoryCrown), 300},
	{"acc_scarf", "Cozy Scarf", "🧣", KindAccessory, string(pet.AccessoryScarf), 45},
}

// ValidItem reports whether item names a real cosmetic of kind.
func ValidItem(kind ItemKind, item string) bool {
	switch kind {
	case KindSkin:
		return pet.Skin(item).Valid()
	case KindAccessory:
		return pet.Accessory(item).Valid()
	}
	return false
}

// FindItem looks up a shop item by ID.
func FindItem(id string) (ShopItem, bool) {
	for _, item := range Shop {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
