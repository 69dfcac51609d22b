package content

import (
	"fmt"
	"math/rand"
	"sort"
)

// Mob is a creature type from the catalog
type Mob struct {
	Char  rune
	Name  string
	Level int
}

// MobTypes is the catalog of creatures, keyed by name
var MobTypes = map[string]Mob{
	"rat":    {Char: 'r', Name: "rat", Level: 1},
	"dog":    {Char: 'd', Name: "dog", Level: 1},
	"cat":    {Char: 'c', Name: "cat", Level: 1},
	"farmer": {Char: 'f', Name: "farmer", Level: 2},
	"bandit": {Char: 'b', Name: "bandit", Level: 3},
	"mutant": {Char: 'M', Name: "mutant", Level: 20},
}

// Label returns the selection-menu label, "<char> L<level> <name>"
func (m Mob) Label() string {
	return fmt.Sprintf("%c L%d %s", m.Char, m.Level, m.Name)
}

// MobNames returns catalog names sorted alphabetically
func MobNames() []string {
	names := make([]string, 0, len(MobTypes))
	for name := range MobTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MobByName looks up a mob type by catalog name
func MobByName(name string) (Mob, bool) {
	m, ok := MobTypes[name]
	return m, ok
}

const (
	// DefaultIntervalSize is the sampling interval for a mob at exactly
	// the player's level
	DefaultIntervalSize = 100

	// DefaultLevelFactor scales the interval per level of distance from
	// the player. Lower values make off-level encounters rarer; with 0.5
	// each level delta halves the chance
	DefaultLevelFactor = 0.3
)

// MobPicker generates random encounters weighted toward the player's
// level. Mobs near the player's level get large sampling intervals; mobs
// far enough away that their interval rounds to zero cannot spawn at all
type MobPicker struct {
	IntervalSize int
	LevelFactor  float64

	rng *rand.Rand
}

// NewMobPicker creates a picker with the default interval scaling
func NewMobPicker(rng *rand.Rand) *MobPicker {
	return &MobPicker{
		IntervalSize: DefaultIntervalSize,
		LevelFactor:  DefaultLevelFactor,
		rng:          rng,
	}
}

// Pick returns a random mob for the given player level. The second return
// is false when every catalog entry is too far from the player's level to
// spawn
func (p *MobPicker) Pick(playerLevel int) (Mob, bool) {
	type interval struct {
		start int
		mob   Mob
	}

	var intervals []interval
	next := 0
	for _, name := range MobNames() {
		mob := MobTypes[name]

		diff := mob.Level - playerLevel
		if diff < 0 {
			diff = -diff
		}
		size := float64(p.IntervalSize)
		for ; diff > 0; diff-- {
			size *= p.LevelFactor
		}
		n := int(size)
		if n == 0 {
			continue
		}

		intervals = append(intervals, interval{start: next, mob: mob})
		next += n + 1
	}
	if len(intervals) == 0 {
		return Mob{}, false
	}

	draw := p.rng.Intn(next)
	idx := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].start > draw
	})
	return intervals[idx-1].mob, true
}
