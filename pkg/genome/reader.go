package genome

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	errs "github.com/matzehuels/genomeviz/pkg/errors"
	"github.com/matzehuels/genomeviz/pkg/network"
)

// maxLineSize bounds a single genome line.
const maxLineSize = 16 << 20

// Read scans r line by line and returns every node and gene record in file
// order. The first malformed line aborts the scan; its error carries the
// 1-based line number.
//
// Read does not close r.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	lineNo := 0
	for sc.Scan() {
		lineNo++
		rec, ok, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidGenome, err, "read genome after line %d", lineNo)
	}
	return records, nil
}

// Load reads a genome from r into a new network.
func Load(r io.Reader) (*network.Network, error) {
	records, err := Read(r)
	if err != nil {
		return nil, err
	}
	net := network.New()
	for _, rec := range records {
		rec.Apply(net)
	}
	return net, nil
}

// LoadFile reads the genome file at path into a new network.
// A missing file is reported with code FILE_NOT_FOUND.
func LoadFile(path string) (*network.Network, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "genome file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
