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

package raw

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Index maps field names to their {offset, length} within a block.
type Index map[string][2]int

// NewBlock creates a named-field view onto data. The block does not copy
// data; callers hand in a slice they own.
func NewBlock(index Index, data []byte) *Block {
	return &Block{index: index, Data: data}
}

// Block gives access to the fields of a fixed layout record by name. All
// multi-byte integers are little endian.
type Block struct {
	index Index
	Data  []byte
}

//
func (b *Block) field(name string, size int) ([]byte, error) {

	f, ok := b.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", name)
	}

	off, l := f[0], f[1]
	if size > 0 && l != size {
		return nil, fmt.Errorf(
			"field %s has length %d, want %d", name, l, size)
	}

	if off < 0 || l < 0 || off+l > len(b.Data) {
		return nil, fmt.Errorf(
			"field %s [%d:%d] exceeds block of length %d",
			name, off, off+l, len(b.Data))
	}

	return b.Data[off : off+l], nil
}

//
func (b *Block) GetByte(name string) byte {
	if d, err := b.field(name, 1); err == nil {
		return d[0]
	}
	return 0
}

//
func (b *Block) GetUInt16(name string) uint16 {
	if d, err := b.field(name, 2); err == nil {
		return binary.LittleEndian.Uint16(d)
	}
	return 0
}

//
func (b *Block) GetUInt32(name string) uint32 {
	if d, err := b.field(name, 4); err == nil {
		return binary.LittleEndian.Uint32(d)
	}
	return 0
}

// GetBytes returns a copy of the named field.
func (b *Block) GetBytes(name string) []byte {
	d, err := b.field(name, 0)
	if err != nil {
		return nil
	}
	ret := make([]byte, len(d))
	copy(ret, d)
	return ret
}

// GetString returns the named field as text, exactly as long as the field.
// Trailing NUL bytes are dropped, nothing past the field is ever read.
func (b *Block) GetString(name string) string {
	d, err := b.field(name, 0)
	if err != nil {
		return ""
	}
	return string(bytes.TrimRight(d, "\x00"))
}

//
func (b *Block) SetByte(name string, v byte) error {
	d, err := b.field(name, 1)
	if err != nil {
		return err
	}
	d[0] = v
	return nil
}

//
func (b *Block) SetUInt16(name string, v uint16) error {
	d, err := b.field(name, 2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(d, v)
	return nil
}

//
func (b *Block) SetUInt32(name string, v uint32) error {
	d, err := b.field(name, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(d, v)
	return nil
}

// SetBytes copies v into the named field, padding with fill if v is shorter.
func (b *Block) SetBytes(name string, v []byte, fill byte) error {
	d, err := b.field(name, 0)
	if err != nil {
		return err
	}
	if len(v) > len(d) {
		return fmt.Errorf("value for field %s too long: %d > %d",
			name, len(v), len(d))
	}
	n := copy(d, v)
	for ix := n; ix < len(d); ix++ {
		d[ix] = fill
	}
	return nil
}

// Sum returns the plain byte sum of the named field.
func (b *Block) Sum(name string) int {
	d, err := b.field(name, 0)
	if err != nil {
		return 0
	}
	sum := 0
	for _, v := range d {
		sum += int(v)
	}
	return sum
}
