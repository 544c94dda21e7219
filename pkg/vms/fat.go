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
	"encoding/binary"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// FAT entry values with special meaning
const (
	FatLastBlock   = 0xfffa
	FatUnallocated = 0xfffc
)

// FatTable holds one allocation entry per block. No semantics are imposed
// on the entries while decoding.
type FatTable [FatEntryCount]uint16

// DecodeFAT reads the FAT blocks declared in root and interprets them as 256
// little endian entries.
func DecodeFAT(img Image, root *RootBlock) (*FatTable, error) {

	if root.FatSize == 0 {
		return nil, fmt.Errorf("%w: FAT has no blocks", ErrTruncated)
	}

	start := int(root.FatBlock)
	if last := start + int(root.FatSize) - 1; last >= BlockCount {
		return nil, fmt.Errorf("%w: FAT spans blocks %d to %d",
			ErrOutOfRange, start, last)
	}

	data, err := img.ReadBlocks(start, int(root.FatSize))
	if err != nil {
		return nil, fmt.Errorf("cannot read FAT: %w", err)
	}

	ret := &FatTable{}
	for ix := range ret {
		ret[ix] = binary.LittleEndian.Uint16(data[2*ix:])
	}

	log.WithFields(log.Fields{
		"block": start, "size": root.FatSize}).Debug("FAT decoded")

	return ret, nil
}

//
func (f *FatTable) IsFree(ix int) bool {
	return f.entry(ix) == FatUnallocated
}

//
func (f *FatTable) IsLast(ix int) bool {
	return f.entry(ix) == FatLastBlock
}

// Next returns the block following ix in a chain, or -1 if ix is the last
// block, unallocated, or not pointing to a valid block.
func (f *FatTable) Next(ix int) int {
	if e := int(f.entry(ix)); e < BlockCount {
		return e
	}
	return -1
}

// FreeUserBlocks counts the unallocated blocks among the first userBlocks
// blocks.
func (f *FatTable) FreeUserBlocks(userBlocks int) int {
	if userBlocks > FatEntryCount {
		userBlocks = FatEntryCount
	}
	free := 0
	for ix := 0; ix < userBlocks; ix++ {
		if f.IsFree(ix) {
			free++
		}
	}
	return free
}

// Encode returns the on-disk form of the table.
func (f *FatTable) Encode() []byte {
	ret := make([]byte, BlockSize)
	for ix, e := range f {
		binary.LittleEndian.PutUint16(ret[2*ix:], e)
	}
	return ret
}

//
func (f *FatTable) entry(ix int) uint16 {
	if ix < 0 || ix >= FatEntryCount {
		return 0xffff
	}
	return f[ix]
}
