package parsers

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

//
// md5FromFile fingerprints a filing so the ledger shows exactly which
// extract fed a run.
//
func md5FromFile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
