package reports

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//
// Filename cleans up the name and returns path/name.xlsx, creating path if
// needed.
//
func Filename(path, name string) (string, error) {
	clean := func(r rune) rune {
		switch r {
		case ' ', ',', '/', '\\', '(', ')', ':', '*', '?':
			return '_'
		}
		return r
	}
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	name = strings.Map(clean, name)

	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return "", errors.Wrapf(err, "creating directory %s", path)
	}

	return filepath.Join(path, name+".xlsx"), nil
}
