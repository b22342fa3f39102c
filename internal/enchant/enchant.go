// Package enchant holds the enchanting-table rules that do not depend on
// host game state: which enchantments can coexist, which items can be
// enchanted at all, and how much power a table draws from the bookshelves
// around it. The world and items stay behind small interfaces owned by the
// caller.
package enchant

import (
	"mc-experience-service/internal/config"
)

// Item is the caller's view of an item stack under consideration for
// enchanting.
type Item interface {
	// Enchantability is the item's base enchantability score.
	Enchantability() int

	// Book reports whether the item is a book or enchanted book.
	Book() bool

	// Damageable reports whether the item takes durability damage, which is
	// what makes a non-book item a valid enchanting target.
	Damageable() bool
}

// CanEnchant reports whether an item passes the enchanting table's gate:
// a positive enchantability plus either a book or a damageable tool.
func CanEnchant(i Item) bool {
	return i.Enchantability() > 0 && (i.Book() || i.Damageable())
}

// Compatible reports whether two enchantments may coexist on one item.
// An enchantment is never compatible with itself, and members of the same
// exclusivity group (the protection family, the damage family, ...) are
// mutually exclusive.
func Compatible(a *config.Enchantment, b *config.Enchantment) bool {
	if a.Id == b.Id {
		return false
	}

	if a.ExclusivityGroup != "" && a.ExclusivityGroup == b.ExclusivityGroup {
		return false
	}

	return true
}

// CompatibleWith returns the subset of candidates compatible with every
// enchantment already applied.
func CompatibleWith(applied []*config.Enchantment, candidates []*config.Enchantment) []*config.Enchantment {
	var out []*config.Enchantment

	for _, candidate := range candidates {
		ok := true
		for _, existing := range applied {
			if !Compatible(existing, candidate) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, candidate)
		}
	}

	return out
}
