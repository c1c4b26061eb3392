package universe

import (
	"fmt"

	"github.com/stardrift-dev/stardrift/internal/rng"
)

// namePrefixes are the base words system names are built from.
var namePrefixes = []string{
	"Altair", "Antares", "Arcturus", "Atria", "Capella",
	"Castor", "Cygnus", "Deneb", "Draco", "Electra",
	"Fomalhaut", "Hadar", "Izar", "Keid", "Lyra",
	"Maia", "Meissa", "Mintaka", "Mirach", "Naos",
	"Nashira", "Orion", "Phact", "Polaris", "Pollux",
	"Procyon", "Rigel", "Sabik", "Sargas", "Sirius",
	"Spica", "Talitha", "Thuban", "Vega", "Wezen",
	"Yildun", "Zaniah", "Zosma",
}

// generateName builds a system name from the given stream.
// Draw order: prefix choice, number in [1, 999], letter in [A, Z].
func generateName(r *rng.Rand) string {
	prefix := rng.Choice(r, namePrefixes)
	number := r.IntRange(1, 999)
	letter := rune('A' + r.IntRange(0, 25))
	return fmt.Sprintf("%s-%d%c", prefix, number, letter)
}
