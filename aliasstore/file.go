/*
 * file.go, part of gosld.
 *
 *
 * Copyright 2026 The goSLD authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package aliasstore saves and loads the alias list of an alias.Registry,
//in text files, optionally compressed, in SQLite or PostgreSQL databases
//and in S3 objects.
package aliasstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gosld/alias"
)

//File keeps aliases in a text file, one "name=formula" line per alias,
//in definition order. Everything after the first '=' is the formula.
//Empty lines and lines starting with '#' are ignored.
//Files ending in .zst are compressed with zstd, files ending in .gz
//with gzip.
type File struct {
	name string
}

//NewFile returns a store for the file name. The file does not need to exist.
func NewFile(name string) *File {
	return &File{name: name}
}

func (F *File) Name() string { return F.name }

//zstd decoders have Close without a return value.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//newReader decompresses r according to the extension of name.
func newReader(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case ".gz":
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//newWriter compresses to w according to the extension of name.
func newWriter(name string, w io.Writer) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case ".gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	default:
		return nopWriteCloser{w}, nil
	}
}

//Load reads the aliases in the file. A file that does not exist
//holds no aliases.
func (F *File) Load() ([]alias.Entry, error) {
	f, err := os.Open(F.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, newError(F.name, "File.Load", err)
	}
	defer f.Close()
	r, err := newReader(F.name, bufio.NewReader(f))
	if err != nil {
		return nil, newError(F.name, "File.Load", err)
	}
	defer r.Close()
	ret, err := readEntries(r, F.name)
	if err != nil {
		return nil, newError(F.name, "File.Load", err)
	}
	return ret, nil
}

func readEntries(r io.Reader, name string) ([]alias.Entry, error) {
	var ret []alias.Entry
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		l := s.Text()
		if t := strings.TrimSpace(l); t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		k, v, ok := strings.Cut(l, "=")
		if !ok {
			log.Printf("goSLD/aliasstore.readEntries: line %d of %s is not a name=formula pair, ignored", line, name)
			continue
		}
		//the formula is kept as written, blanks included
		ret = append(ret, alias.Entry{Name: strings.TrimSpace(k), Formula: v})
	}
	return ret, s.Err()
}

//Save replaces the contents of the file with entries. The new contents are
//written to a temporary file first, which then replaces the old one.
func (F *File) Save(entries []alias.Entry) (err error) {
	dir := filepath.Dir(F.name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return newError(F.name, "File.Save", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(F.name)+".*")
	if err != nil {
		return newError(F.name, "File.Save", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	buf := bufio.NewWriter(tmp)
	if err = writeEntries(F.name, buf, entries); err != nil {
		return newError(F.name, "File.Save", err)
	}
	if err = buf.Flush(); err != nil {
		return newError(F.name, "File.Save", err)
	}
	if err = tmp.Close(); err != nil {
		return newError(F.name, "File.Save", err)
	}
	if err = os.Rename(tmp.Name(), F.name); err != nil {
		return newError(F.name, "File.Save", err)
	}
	return nil
}

//writeEntries writes entries to w, compressed according to the
//extension of name.
func writeEntries(name string, w io.Writer, entries []alias.Entry) error {
	cw, err := newWriter(name, w)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(cw, "%s=%s\n", e.Name, e.Formula); err != nil {
			cw.Close()
			return err
		}
	}
	return cw.Close()
}
