// Package huffio compresses and decompresses files with the huffman codec,
// deriving output file names from input file names.
package huffio

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/hufftree"
)

var log = logging.MustGetLogger("huffio")

// Config holds the file naming policy and decoding strictness.
type Config struct {
	// EncodedSuffix is appended to a text file's name to name its
	// compressed container.
	EncodedSuffix string

	// DecodedSuffix is appended to the base name of a container to name
	// the recovered text file.
	DecodedSuffix string

	// Strict rejects containers with non-zero padding or trailing bytes.
	Strict bool
}

// DefaultConfig returns the default naming policy: "x" compresses to
// "x.huff.txt", which decompresses to "x.out.txt".
func DefaultConfig() Config {
	return Config{
		EncodedSuffix: ".huff.txt",
		DecodedSuffix: ".out.txt",
	}
}

func (c Config) codec() huffman.Codec {
	return huffman.Codec{Strict: c.Strict}
}

// EncodedPath returns the container name for a text file.
func (c Config) EncodedPath(path string) string {
	return path + c.EncodedSuffix
}

// DecodedPath returns the recovered text name for a container.
func (c Config) DecodedPath(path string) string {
	if c.EncodedSuffix != "" && strings.HasSuffix(path, c.EncodedSuffix) {
		path = strings.TrimSuffix(path, c.EncodedSuffix)
	}
	return path + c.DecodedSuffix
}

// CompressFile compresses the text file at path and returns the name of the
// container written.
func (c Config) CompressFile(path string) (string, error) {
	text, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}

	data, err := c.codec().Encode(string(text))
	if err != nil {
		return "", errors.Wrapf(err, "%s", path)
	}

	outPath := c.EncodedPath(path)
	if outPath == path {
		return "", errors.Errorf("%s: output name equals input name", path)
	}
	if err := writeFileAtomic(outPath, data); err != nil {
		return "", err
	}
	log.Infof("compressed %s (%d bytes) -> %s (%d bytes)", path, len(text), outPath, len(data))
	return outPath, nil
}

// DecompressFile decompresses the container at path and returns the name of
// the text file written.
func (c Config) DecompressFile(path string) (string, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", err
	}

	text, err := c.codec().Decode(data)
	if err != nil {
		return "", errors.Wrapf(err, "%s", path)
	}

	outPath := c.DecodedPath(path)
	if outPath == path {
		return "", errors.Errorf("%s: output name equals input name", path)
	}
	if err := writeFileAtomic(outPath, []byte(text)); err != nil {
		return "", err
	}
	log.Infof("decompressed %s (%d bytes) -> %s (%d bytes)", path, len(data), outPath, len(text))
	return outPath, nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// that path never holds a partial file.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := ioutil.TempFile(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()
	log.Debugf("writing %d bytes to %s", len(data), tmpPath)

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
