package heads

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPlayer(t *testing.T) {
	id := uuid.MustParse("8d36737e-1c0a-4a71-87de-9906f577845e")

	h := ForPlayer(id)
	assert.Equal(t, "8d36737e-1c0a-4a71-87de-9906f577845e", h.Owner)
}

func TestForUsername(t *testing.T) {
	h := ForUsername("Expectational")
	assert.Equal(t, "Expectational", h.Owner)
	assert.Equal(t, "Expectational", h.Name)
}

func TestURLs(t *testing.T) {
	h := ForUsername("Expectational")

	assert.Equal(t, "https://mc-heads.net/avatar/Expectational/100", h.AvatarURL(100))
	assert.Equal(t, "https://mc-heads.net/head/Expectational", h.RenderURL())
}

func TestMobHeads(t *testing.T) {
	assert.Equal(t, "MHF_Steve", Steve().Owner)
	assert.Equal(t, "MHF_WSkeleton", WitherSkeleton().Owner)
	assert.Equal(t, "MHF_Creeper", Creeper().Owner)

	// A few MHF accounts do not match their mob's display name.
	assert.Equal(t, "MHF_LavaSlime", MagmaCube().Owner)
	assert.Equal(t, "MHF_PigZombie", ZombiePigman().Owner)
	assert.Equal(t, "MHF_Golem", IronGolem().Owner)
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 35)

	seen := make(map[string]bool, len(catalog))
	for _, h := range catalog {
		assert.True(t, strings.HasPrefix(h.Owner, "MHF_"), "owner %s", h.Owner)
		assert.NotEmpty(t, h.Name)
		assert.False(t, seen[h.Owner], "duplicate owner %s", h.Owner)
		seen[h.Owner] = true
	}

	// The creative-menu mob heads are not part of the decorative set.
	assert.False(t, seen[Skeleton().Owner])
	assert.False(t, seen[Zombie().Owner])
	assert.False(t, seen[Creeper().Owner])
}
