/*
   VMUTool - Dreamcast Visual Memory image inspector
   Copyright (c) 2026, the VMUTool authors

   This file is part of VMUTool.

   VMUTool is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   VMUTool is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with VMUTool. If not, see <http://www.gnu.org/licenses/>.
*/

package vms

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// NewCard decodes the root block of img. If this fails, the image is
// unusable as a whole and the error is returned.
func NewCard(name string, img Image) (*Card, error) {

	root, err := DecodeRoot(img)
	if err != nil {
		return nil, err
	}

	return &Card{name: name, image: img, root: root}, nil
}

// Card is a decoded flash memory image.
type Card struct {
	name  string
	image Image
	root  *RootBlock
}

//
func (c *Card) Name() string {
	return c.name
}

//
func (c *Card) Image() Image {
	return c.image
}

//
func (c *Card) Root() *RootBlock {
	return c.root
}

//
func (c *Card) FAT() (*FatTable, error) {
	return DecodeFAT(c.image, c.root)
}

//
func (c *Card) Directory() ([]*DirEntry, error) {
	return DecodeDirectory(c.image, c.root)
}

//
func (c *Card) Header(e *DirEntry) (*FileHeader, error) {
	return DecodeHeader(c.image, e)
}

// Ls lists all files on the card together with their headers. A file whose
// header cannot be decoded is still listed, with its error set. The returned
// error combines all such per-file errors, unless the directory or FAT
// itself could not be read, in which case nothing is listed.
func (c *Card) Ls() (*FsStats, []*FileInfo, error) {

	dir, err := c.Directory()
	if err != nil {
		return nil, nil, err
	}

	stats := &FsStats{userBlocks: int(c.root.UserBlocks)}

	if fat, err := c.FAT(); err == nil {
		stats.free = fat.FreeUserBlocks(stats.userBlocks)
		stats.hasFAT = true
	} else {
		log.Warnf("cannot determine free blocks: %v", err)
		for _, e := range dir {
			stats.free -= int(e.Size)
		}
		stats.free += stats.userBlocks
	}

	var errs error
	ret := make([]*FileInfo, len(dir))

	for ix, e := range dir {
		h, err := c.Header(e)
		if err != nil {
			log.WithField("entry", e.Ref()).Warnf("cannot decode header: %v", err)
			errs = multierr.Append(errs, err)
		}
		ret[ix] = newFileInfo(e, h, err)
	}

	return stats, ret, errs
}

// Lookup finds a file by reference. A reference is either an entry index as
// in #007, or a file name. A bare number such as 7 is taken as a file name
// first, and as an index only if no file has that name.
func (c *Card) Lookup(ref string) (*DirEntry, error) {

	dir, err := c.Directory()
	if err != nil {
		return nil, err
	}

	ref = strings.TrimSpace(ref)

	if strings.HasPrefix(ref, "#") {
		n, err := strconv.Atoi(ref[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid file index: %s", ref)
		}
		return lookupIndex(dir, n)
	}

	for _, e := range dir {
		if e.Title() == ref {
			return e, nil
		}
	}

	if n, err := strconv.Atoi(ref); err == nil {
		return lookupIndex(dir, n)
	}

	return nil, fmt.Errorf("file not found: %s", ref)
}

//
func lookupIndex(dir []*DirEntry, n int) (*DirEntry, error) {
	if n < 0 || n >= len(dir) {
		return nil, fmt.Errorf("no file with index %d", n)
	}
	return dir[n], nil
}

//
type FsStats struct {
	userBlocks int
	free       int
	hasFAT     bool
}

//
func (s *FsStats) UserBlocks() int {
	return s.userBlocks
}

//
func (s *FsStats) Free() int {
	return s.free
}

//
func (s *FsStats) Used() int {
	return s.userBlocks - s.free
}

// FromFAT tells whether the free count was taken from the FAT, as opposed to
// being estimated from the directory.
func (s *FsStats) FromFAT() bool {
	return s.hasFAT
}
