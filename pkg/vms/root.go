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
	"image/color"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/vms/raw"
)

//
var rootIndex = raw.Index{
	"format":      {0x00, FormatMarkerLength},
	"customColor": {0x10, 1},
	"colorBlue":   {0x11, 1},
	"colorGreen":  {0x12, 1},
	"colorRed":    {0x13, 1},
	"colorAlpha":  {0x14, 1},
	"created":     {0x30, TimestampLength},
	"fatBlock":    {0x46, 2},
	"fatSize":     {0x48, 2},
	"dirBlock":    {0x4a, 2},
	"dirSize":     {0x4c, 2},
	"iconShape":   {0x4e, 2},
	"userBlocks":  {0x50, 2},
}

// RootBlock holds the card metadata and file system pointers of block 255.
type RootBlock struct {
	CustomColor bool
	ColorRed    byte
	ColorGreen  byte
	ColorBlue   byte
	ColorAlpha  byte
	Created     Timestamp
	FatBlock    uint16
	FatSize     uint16
	DirBlock    uint16 // directory blocks count downwards from here
	DirSize     uint16
	IconShape   uint16
	UserBlocks  uint16
}

// DecodeRoot decodes the root block of img. Any byte of the format marker
// other than 0x55 results in ErrNotFormatted.
func DecodeRoot(img Image) (*RootBlock, error) {

	data, err := img.ReadBlock(RootBlockIndex)
	if err != nil {
		return nil, fmt.Errorf("cannot read root block: %w", err)
	}

	b := raw.NewBlock(rootIndex, data)

	for ix, m := range b.GetBytes("format") {
		if m != FormatMarker {
			return nil, fmt.Errorf(
				"%w: format marker byte %d is %02x", ErrNotFormatted, ix, m)
		}
	}

	created, err := DecodeTimestamp(b.GetBytes("created"))
	if err != nil {
		return nil, err
	}

	ret := &RootBlock{
		CustomColor: b.GetByte("customColor") != 0,
		ColorRed:    b.GetByte("colorRed"),
		ColorGreen:  b.GetByte("colorGreen"),
		ColorBlue:   b.GetByte("colorBlue"),
		ColorAlpha:  b.GetByte("colorAlpha"),
		Created:     created,
		FatBlock:    b.GetUInt16("fatBlock"),
		FatSize:     b.GetUInt16("fatSize"),
		DirBlock:    b.GetUInt16("dirBlock"),
		DirSize:     b.GetUInt16("dirSize"),
		IconShape:   b.GetUInt16("iconShape"),
		UserBlocks:  b.GetUInt16("userBlocks"),
	}

	log.WithFields(log.Fields{
		"fat":        ret.FatBlock,
		"fatSize":    ret.FatSize,
		"dir":        ret.DirBlock,
		"dirSize":    ret.DirSize,
		"userBlocks": ret.UserBlocks,
	}).Debug("root block decoded")

	return ret, nil
}

// Color returns the custom card color. Only meaningful if CustomColor is set.
func (r *RootBlock) Color() color.NRGBA {
	return color.NRGBA{
		R: r.ColorRed, G: r.ColorGreen, B: r.ColorBlue, A: r.ColorAlpha}
}

// Encode writes r into a root block. Used for building images.
func (r *RootBlock) Encode() []byte {

	data := make([]byte, BlockSize)
	b := raw.NewBlock(rootIndex, data)

	format := make([]byte, FormatMarkerLength)
	for ix := range format {
		format[ix] = FormatMarker
	}
	b.SetBytes("format", format, FormatMarker)

	if r.CustomColor {
		b.SetByte("customColor", 1)
	}
	b.SetByte("colorRed", r.ColorRed)
	b.SetByte("colorGreen", r.ColorGreen)
	b.SetByte("colorBlue", r.ColorBlue)
	b.SetByte("colorAlpha", r.ColorAlpha)
	b.SetBytes("created", r.Created.Bytes(), 0)
	b.SetUInt16("fatBlock", r.FatBlock)
	b.SetUInt16("fatSize", r.FatSize)
	b.SetUInt16("dirBlock", r.DirBlock)
	b.SetUInt16("dirSize", r.DirSize)
	b.SetUInt16("iconShape", r.IconShape)
	b.SetUInt16("userBlocks", r.UserBlocks)

	return data
}

// NewDefaultRoot returns the root block layout of a freshly formatted card.
func NewDefaultRoot() *RootBlock {
	return &RootBlock{
		FatBlock:   DefaultFatBlock,
		FatSize:    DefaultFatSize,
		DirBlock:   DefaultDirBlock,
		DirSize:    DefaultDirSize,
		UserBlocks: DefaultUserBlocks,
	}
}
