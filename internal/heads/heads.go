// Package heads builds decorative player and mob head descriptors. A head
// is identified by the profile whose skin it wears: a player UUID, or one
// of the MHF_ accounts Mojang maintains for the built-in decorative set.
// Render URLs come from mc-heads.net.
package heads

import (
	"fmt"

	"github.com/google/uuid"
)

// Head describes a decorative head by its skin owner.
type Head struct {
	// Owner is the profile the skin is pulled from: a UUID string for
	// player heads, an account name otherwise.
	Owner string

	// Name is a friendly display name for the head.
	Name string
}

// ForPlayer returns a head wearing the skin of the player with the given id.
func ForPlayer(id uuid.UUID) Head {
	return Head{Owner: id.String(), Name: "Player Head"}
}

// ForUsername returns a head wearing the skin of the named account.
// Prefer ForPlayer: usernames change, UUIDs do not.
func ForUsername(username string) Head {
	return Head{Owner: username, Name: username}
}

// AvatarURL returns a square face render of the head's skin.
func (h Head) AvatarURL(size int) string {
	return fmt.Sprintf("https://mc-heads.net/avatar/%s/%d", h.Owner, size)
}

// RenderURL returns a 3D render of the head.
func (h Head) RenderURL() string {
	return fmt.Sprintf("https://mc-heads.net/head/%s", h.Owner)
}

func mojang(account string, name string) Head {
	return Head{Owner: "MHF_" + account, Name: name}
}

// Mob heads also available from the creative menu.

func Steve() Head          { return mojang("Steve", "Steve") }
func Skeleton() Head       { return mojang("Skeleton", "Skeleton") }
func WitherSkeleton() Head { return mojang("WSkeleton", "Wither Skeleton") }
func Zombie() Head         { return mojang("Zombie", "Zombie") }
func Creeper() Head        { return mojang("Creeper", "Creeper") }

// The decorative set.

func Alex() Head         { return mojang("Alex", "Alex") }
func ArrowDown() Head    { return mojang("ArrowDown", "Down Arrow") }
func ArrowLeft() Head    { return mojang("ArrowLeft", "Left Arrow") }
func ArrowRight() Head   { return mojang("ArrowRight", "Right Arrow") }
func ArrowUp() Head      { return mojang("ArrowUp", "Up Arrow") }
func Blaze() Head        { return mojang("Blaze", "Blaze") }
func Cactus() Head       { return mojang("Cactus", "Cactus") }
func Cake() Head         { return mojang("Cake", "Cake") }
func CaveSpider() Head   { return mojang("CaveSpider", "Cave Spider") }
func Chicken() Head      { return mojang("Chicken", "Chicken") }
func BrownCoconut() Head { return mojang("CoconutB", "Brown Coconut") }
func GreenCoconut() Head { return mojang("CoconutG", "Green Coconut") }
func Cow() Head          { return mojang("Cow", "Cow") }
func Enderman() Head     { return mojang("Enderman", "Enderman") }
func Exclamation() Head  { return mojang("Exclamation", "Exclamation Mark") }
func Ghast() Head        { return mojang("Ghast", "Ghast") }
func IronGolem() Head    { return mojang("Golem", "Iron Golem") }
func Herobrine() Head    { return mojang("Herobrine", "Herobrine") }
func MagmaCube() Head    { return mojang("LavaSlime", "Magma Cube") }
func Melon() Head        { return mojang("Melon", "Melon") }
func MooshroomCow() Head { return mojang("MushroomCow", "Mooshroom") }
func OakLog() Head       { return mojang("OakLog", "Oak Log") }
func Ocelot() Head       { return mojang("Ocelot", "Ocelot") }
func Pig() Head          { return mojang("Pig", "Pig") }
func ZombiePigman() Head { return mojang("PigZombie", "Zombie Pigman") }
func GreenPresent() Head { return mojang("Present1", "Green Present") }
func RedPresent() Head   { return mojang("Present2", "Red Present") }
func Question() Head     { return mojang("Question", "Question Mark") }
func Sheep() Head        { return mojang("Sheep", "Sheep") }
func Slime() Head        { return mojang("Slime", "Slime") }
func Spider() Head       { return mojang("Spider", "Spider") }
func Squid() Head        { return mojang("Squid", "Squid") }
func TNT() Head          { return mojang("TNT", "TNT") }
func TNTPlain() Head     { return mojang("TNT2", "TNT") }
func Villager() Head     { return mojang("Villager", "Villager") }

// Catalog returns every built-in decorative head, excluding the mob heads
// the creative menu already carries.
func Catalog() []Head {
	return []Head{
		Alex(), ArrowDown(), ArrowLeft(), ArrowRight(), ArrowUp(), Blaze(),
		Cactus(), Cake(), CaveSpider(), Chicken(), BrownCoconut(),
		GreenCoconut(), Cow(), Enderman(), Exclamation(), Ghast(),
		IronGolem(), Herobrine(), MagmaCube(), Melon(), MooshroomCow(),
		OakLog(), Ocelot(), Pig(), ZombiePigman(), GreenPresent(),
		RedPresent(), Question(), Sheep(), Slime(), Spider(), Squid(),
		TNT(), TNTPlain(), Villager(),
	}
}
