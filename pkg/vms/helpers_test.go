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
	"testing"
)

// testImage builds a formatted image with default layout. Entries are placed
// into the directory in order, starting at the first slot of the first
// directory block.
type testImage struct {
	data Image
	root *RootBlock
}

//
func newTestImage(t *testing.T) *testImage {
	t.Helper()
	ti := &testImage{data: make(Image, ImageSize), root: NewDefaultRoot()}
	ti.root.Created = Timestamp{0x20, 0x01, 0x09, 0x14, 0x12, 0x34, 0x56, 0x04}
	ti.writeRoot()

	fat := &FatTable{}
	for ix := range fat {
		fat[ix] = FatUnallocated
	}
	ti.writeFAT(fat)
	return ti
}

//
func (ti *testImage) writeRoot() {
	ti.writeBlock(RootBlockIndex, ti.root.Encode())
}

//
func (ti *testImage) writeFAT(f *FatTable) {
	ti.writeBlock(int(ti.root.FatBlock), f.Encode())
}

//
func (ti *testImage) writeBlock(ix int, data []byte) {
	copy(ti.data[ix*BlockSize:(ix+1)*BlockSize], data)
}

// putEntry writes e into the given directory block and slot.
func (ti *testImage) putEntry(block, slot int, e *DirEntry) {
	off := block*BlockSize + slot*DirEntryLength
	copy(ti.data[off:off+DirEntryLength], e.Encode())
}

//
func newEntry(typ byte, name string, first, size, offset uint16) *DirEntry {
	e := &DirEntry{Type: typ, FirstBlock: first, Size: size, HeaderOffset: offset}
	e.SetName(name)
	return e
}

//
func newHeader(vms, dc, app string) *FileHeader {
	h := &FileHeader{}
	copy(h.VMSDesc[:], padded(vms, len(h.VMSDesc)))
	copy(h.DCDesc[:], padded(dc, len(h.DCDesc)))
	copy(h.App[:], padded(app, len(h.App)))
	return h
}

//
func padded(s string, l int) []byte {
	ret := []byte(s)
	for len(ret) < l {
		ret = append(ret, ' ')
	}
	return ret[:l]
}
