package reconcile

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/dude333/dartfin"
	"github.com/pkg/errors"
)

//
// Marshal renders the document as indented JSON. Map keys are sorted by
// encoding/json, so the same document always gives the same bytes.
//
func Marshal(doc dartfin.Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding document")
	}
	return append(b, '\n'), nil
}

//
// WriteFile replaces 'file' with the document. The JSON goes to a temporary
// file on the same directory which is then renamed over the target, so a
// reader sees either the previous run or the new one.
//
func WriteFile(file string, doc dartfin.Document) (err error) {
	b, err := Marshal(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(file)
	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(file)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temporary file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b); err != nil {
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrapf(err, "syncing %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), file); err != nil {
		return errors.Wrapf(err, "replacing %s", file)
	}

	return nil
}
