package fetch

import (
	"archive/zip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dude333/dartfin"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/korean"
)

// WriteCounter counts the number of bytes written the io.Writer.
type WriteCounter struct {
	Total uint64
}

// Write implements the io.Writer interface and will be passed to io.TeeReader().
func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	return n, nil
}

//
// Unzip extracts the statement extracts (.txt members) of a DART bulk
// archive into dest and returns their paths. Other members are ignored.
//
func Unzip(src, dest string, log dartfin.Logger) ([]string, error) {
	var filenames []string

	r, err := zip.OpenReader(src)
	if err != nil {
		return filenames, errors.Wrapf(err, "opening %s", src)
	}
	defer r.Close()

	for _, f := range r.File {
		name := memberName(f)
		if f.FileInfo().IsDir() || !valid(name) {
			continue
		}

		fpath := filepath.Join(dest, name)

		// Check for ZipSlip. More Info: http://bit.ly/2MsjAWE
		if !strings.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return filenames, fmt.Errorf("%s: illegal file path", fpath)
		}

		n, err := extract(f, fpath)
		if err != nil {
			return filenames, err
		}
		log.Debug("%s: %s", fpath, humanize.Bytes(n))

		filenames = append(filenames, fpath)
	}

	return filenames, nil
}

func extract(f *zip.File, fpath string) (uint64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", fpath)
	}
	defer rc.Close()

	if err = os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
		return 0, err
	}

	outFile, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}

	counter := &WriteCounter{}
	_, err = io.Copy(outFile, io.TeeReader(rc, counter))

	// https://www.joeshaw.org/dont-defer-close-on-writable-files/
	if cerr := outFile.Close(); err == nil {
		err = cerr
	}

	return counter.Total, errors.Wrapf(err, "extracting %s", fpath)
}

//
// memberName returns the member name in UTF-8. Archives made on Korean
// Windows store CP949 names (NonUTF8 set); names that are already valid
// UTF-8 are kept even without the UTF-8 flag.
//
func memberName(f *zip.File) string {
	if utf8.ValidString(f.Name) {
		return f.Name
	}
	name, err := korean.EUCKR.NewDecoder().String(f.Name)
	if err != nil {
		return f.Name
	}
	return name
}

func valid(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".txt")
}

//
// UnzipAll extracts every .zip archive found on dir into dir itself, so the
// filings sit where the update command looks for them. An archive that
// cannot be read is reported and skipped.
//
func UnzipAll(dir string, log dartfin.Logger) ([]string, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory %s", dir)
	}

	var archives []string
	for _, fi := range infos {
		if fi.Mode().IsRegular() && strings.EqualFold(filepath.Ext(fi.Name()), ".zip") {
			archives = append(archives, fi.Name())
		}
	}
	sort.Strings(archives)

	var files []string
	for _, a := range archives {
		log.Run("Unzipping %s", a)
		list, err := Unzip(filepath.Join(dir, a), dir, log)
		files = append(files, list...)
		if err != nil {
			log.Nok()
			log.Error("%v", err)
			continue
		}
		log.Ok()
	}

	return files, nil
}
