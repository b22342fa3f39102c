package config

import (
	"github.com/spf13/viper"
)

type EnchantConfig struct {
	Enchantments map[string]*Enchantment
}

type Enchantment struct {
	Id string

	FriendlyName string
	MaxLevel     int

	// Weight drives how often the table offers the enchantment.
	Weight int

	// ExclusivityGroup names a family whose members cannot share an item.
	// Empty means the enchantment conflicts with nothing but itself.
	ExclusivityGroup string

	// ItemGroups are the item categories the enchantment applies to.
	ItemGroups []string
}

func LoadEnchantConfig() (config EnchantConfig, err error) {
	v := viper.New()
	v.AddConfigPath("./enchant-config")
	v.SetConfigName("config")

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
