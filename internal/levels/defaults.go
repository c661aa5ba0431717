package levels

import (
	_ "embed"
	"fmt"

	"github.com/rionnag/unblocked/internal/levels/formats"
)

//go:embed defaults/std_levels.txt
var stdLevels []byte

// DefaultSet returns the level set built into the binary: the demo level
// plus the standard campaign.
func DefaultSet() (*Set, error) {
	var lvls []Level
	for _, p := range formats.ParseText(stdLevels, 0) {
		lvl, err := fromParsed(p)
		if err != nil {
			return nil, fmt.Errorf("embedded level set: %w", err)
		}
		lvls = append(lvls, lvl)
	}
	return NewSet(lvls)
}
