package content

import (
	"fmt"
	"sort"
)

// Tile is a placeable map cell type
type Tile struct {
	Name string
	Char rune
}

// TileTypes is the catalog of placeable tiles, keyed by name
var TileTypes = map[string]Tile{
	"door":  {Name: "door", Char: '+'},
	"floor": {Name: "floor", Char: '.'},
	"wall":  {Name: "wall", Char: '#'},

	"enemy": {Name: "enemy", Char: 'e'},

	"one":   {Name: "one", Char: '1'},
	"two":   {Name: "two", Char: '2'},
	"three": {Name: "three", Char: '3'},
	"four":  {Name: "four", Char: '4'},
	"five":  {Name: "five", Char: '5'},
	"six":   {Name: "six", Char: '6'},
	"seven": {Name: "seven", Char: '7'},
	"eight": {Name: "eight", Char: '8'},
	"nine":  {Name: "nine", Char: '9'},
	"zero":  {Name: "zero", Char: '0'},
}

// Label returns the selection-menu label, "<char> <name>"
func (t Tile) Label() string {
	return fmt.Sprintf("%c %s", t.Char, t.Name)
}

// TileNames returns catalog names sorted alphabetically, the order the
// selection menu presents them in
func TileNames() []string {
	names := make([]string, 0, len(TileTypes))
	for name := range TileTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TileByName looks up a tile type by catalog name
func TileByName(name string) (Tile, bool) {
	t, ok := TileTypes[name]
	return t, ok
}
