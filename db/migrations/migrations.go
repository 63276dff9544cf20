package migrations

import (
	"embed"
	"io/fs"
	"strconv"
	"strings"
)

// FS holds the SQL migrations of the agency-desk schema, read by the
// golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Latest returns the highest version among the embedded up migrations.
func Latest() (uint, error) {
	names, err := fs.Glob(FS, "*.up.sql")
	if err != nil {
		return 0, err
	}
	var latest uint
	for _, name := range names {
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			continue
		}
		latest = max(latest, uint(v))
	}
	return latest, nil
}
