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
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/vms/raw"
)

// directory entry types
const (
	FileTypeNone = 0x00
	FileTypeData = 0x33
	FileTypeGame = 0xcc
)

// copy protection flags
const (
	CopyUnprotected = 0x00
	CopyProtected   = 0xff
)

//
var dirEntryIndex = raw.Index{
	"type":         {0x00, 1},
	"copyProtect":  {0x01, 1},
	"firstBlock":   {0x02, 2},
	"name":         {0x04, fileNameLength},
	"created":      {0x10, TimestampLength},
	"size":         {0x18, 2},
	"headerOffset": {0x1a, 2},
}

// DirEntry is a decoded directory entry for a data or game file.
type DirEntry struct {
	// position of the entry among all emitted entries, starting at 0
	Index int
	// block and slot the entry was found in
	DirBlock int
	Slot     int
	//
	Type           byte
	CopyProtection byte
	FirstBlock     uint16
	Name           [fileNameLength]byte
	Created        Timestamp
	Size           uint16 // in blocks
	HeaderOffset   uint16 // in blocks, relative to FirstBlock
}

// DecodeDirectory decodes all directory blocks declared in root. Blocks are
// visited in descending order starting at root.DirBlock, entries within a
// block in ascending order. Only data and game entries are returned.
func DecodeDirectory(img Image, root *RootBlock) ([]*DirEntry, error) {

	var ret []*DirEntry

	for b := 0; b < int(root.DirSize); b++ {

		block := int(root.DirBlock) - b
		if block < 0 {
			return nil, fmt.Errorf(
				"%w: directory block %d below start of image", ErrOutOfRange, block)
		}

		data, err := img.ReadBlock(block)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory: %w", err)
		}

		for slot := 0; slot < DirEntriesPerBlock; slot++ {

			off := slot * DirEntryLength
			e, err := decodeDirEntry(data[off : off+DirEntryLength])
			if err != nil {
				return nil, fmt.Errorf(
					"directory block %d, slot %d: %w", block, slot, err)
			}
			if e == nil {
				continue
			}

			e.Index = len(ret)
			e.DirBlock = block
			e.Slot = slot
			ret = append(ret, e)

			log.WithFields(log.Fields{
				"index": e.Index,
				"block": block,
				"slot":  slot,
				"name":  e.Title(),
			}).Trace("directory entry")
		}
	}

	log.WithField("entries", len(ret)).Debug("directory decoded")
	return ret, nil
}

// decodeDirEntry returns nil for slots not holding a data or game file.
func decodeDirEntry(data []byte) (*DirEntry, error) {

	b := raw.NewBlock(dirEntryIndex, data)

	typ := b.GetByte("type")
	if typ != FileTypeData && typ != FileTypeGame {
		return nil, nil
	}

	created, err := DecodeTimestamp(b.GetBytes("created"))
	if err != nil {
		return nil, err
	}

	ret := &DirEntry{
		Type:           typ,
		CopyProtection: b.GetByte("copyProtect"),
		FirstBlock:     b.GetUInt16("firstBlock"),
		Created:        created,
		Size:           b.GetUInt16("size"),
		HeaderOffset:   b.GetUInt16("headerOffset"),
	}
	copy(ret.Name[:], b.GetBytes("name"))

	return ret, nil
}

// Encode returns the 32 byte on-disk form of e.
func (e *DirEntry) Encode() []byte {
	data := make([]byte, DirEntryLength)
	b := raw.NewBlock(dirEntryIndex, data)
	b.SetByte("type", e.Type)
	b.SetByte("copyProtect", e.CopyProtection)
	b.SetUInt16("firstBlock", e.FirstBlock)
	b.SetBytes("name", e.Name[:], 0)
	b.SetBytes("created", e.Created.Bytes(), 0)
	b.SetUInt16("size", e.Size)
	b.SetUInt16("headerOffset", e.HeaderOffset)
	return data
}

// SetName sets the file name, padded with spaces.
func (e *DirEntry) SetName(n string) {
	for ix := range e.Name {
		if ix < len(n) {
			e.Name[ix] = n[ix]
		} else {
			e.Name[ix] = ' '
		}
	}
}

// Title returns the file name without trailing padding.
func (e *DirEntry) Title() string {
	return strings.TrimRight(string(e.Name[:]), " \x00")
}

//
func (e *DirEntry) IsData() bool {
	return e.Type == FileTypeData
}

//
func (e *DirEntry) IsGame() bool {
	return e.Type == FileTypeGame
}

//
func (e *DirEntry) IsProtected() bool {
	return e.CopyProtection == CopyProtected
}

// IsIconData tells whether this entry is the reserved system icon file.
// The name has to match all twelve bytes.
func (e *DirEntry) IsIconData() bool {
	return string(e.Name[:]) == IconDataName
}

//
func (e *DirEntry) TypeName() string {
	switch e.Type {
	case FileTypeData:
		return "data"
	case FileTypeGame:
		return "game"
	}
	return "?"
}

// HeaderBlock returns the index of the block holding the file header.
func (e *DirEntry) HeaderBlock() int {
	return int(e.FirstBlock) + int(e.HeaderOffset)
}

// Ref returns the presentation reference of this entry, e.g. #003.
func (e *DirEntry) Ref() string {
	return fmt.Sprintf("#%03d", e.Index)
}
