/*
 * store.go, part of gosld.
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

package aliasstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rmera/gosld/alias"
)

//ErrStore is the kind of every error from this package.
var ErrStore = errors.New("alias store error")

//Store is an alias.Store that knows where it keeps the aliases.
type Store interface {
	alias.Store
	Name() string
}

//Timeout bounds every database and network operation of the stores.
var Timeout = 30 * time.Second

//Open returns the store for path: a PostgreSQL database for postgres://
//and postgresql:// URLs, an S3 object for s3:// URLs, an SQLite database
//for the extensions .db, .sqlite and .sqlite3 and a text file otherwise.
func Open(path string) (Store, error) {
	var s Store
	var err error
	switch {
	case strings.HasPrefix(path, "postgres://"), strings.HasPrefix(path, "postgresql://"):
		s, err = NewPostgres(path)
	case strings.HasPrefix(path, "s3://"):
		var cfg S3Config
		if cfg, err = ParseS3URL(path); err == nil {
			s, err = NewS3(cfg)
		}
	default:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite", ".sqlite3":
			s, err = NewSQLite(path)
		default:
			s = NewFile(path)
		}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

//Error is an error reading or writing a store.
type Error struct {
	filename string
	err      error
	deco     []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("goSLD/aliasstore: %s: %v", err.filename, err.err)
}

func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) FileName() string { return err.filename }

func (err *Error) Critical() bool { return false }

//Is reports ErrStore as the kind of the error.
func (err *Error) Is(target error) bool { return target == ErrStore }

func (err *Error) Unwrap() error { return err.err }

func newError(filename, caller string, err error) *Error {
	return &Error{filename: filename, err: err, deco: []string{caller}}
}
