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

package render

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/xelalexv/vmutool/pkg/vms"
)

// WriteRoot writes a summary of the root block of c.
func WriteRoot(w io.Writer, c *vms.Card) {

	r := c.Root()

	fmt.Fprintf(w, "\n%s\n\n", c.Name())
	fmt.Fprintf(w, "custom color:           %s\n", yesNo(r.CustomColor))
	if r.CustomColor {
		fmt.Fprintf(w, "color:                  rgba(%d, %d, %d, %d)\n",
			r.ColorRed, r.ColorGreen, r.ColorBlue, r.ColorAlpha)
	}
	fmt.Fprintf(w, "created:                %s\n", r.Created)
	fmt.Fprintf(w, "FAT location:           %d\n", r.FatBlock)
	fmt.Fprintf(w, "FAT size:               %d\n", r.FatSize)
	fmt.Fprintf(w, "FAT directory location: %d\n", r.DirBlock)
	fmt.Fprintf(w, "FAT directory size:     %d\n", r.DirSize)
	fmt.Fprintf(w, "icon shape:             %d\n", r.IconShape)
	fmt.Fprintf(w, "user blocks:            %d\n\n", r.UserBlocks)
}

// WriteFAT writes the FAT as a grid of 16 entries per line.
func WriteFAT(w io.Writer, c *vms.Card) {

	fat, err := c.FAT()
	if err != nil {
		fmt.Fprintf(w, "\nerror reading FAT: %v\n\n", err)
		return
	}

	fmt.Fprintln(w)
	for ix, e := range fat {
		if ix%16 == 0 {
			fmt.Fprintf(w, "%3d: ", ix)
		}
		switch {
		case fat.IsFree(ix):
			fmt.Fprint(w, " ....")
		case fat.IsLast(ix):
			fmt.Fprint(w, "  END")
		default:
			fmt.Fprintf(w, " %04x", e)
		}
		if ix%16 == 15 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "\n%d of %d user blocks free\n\n",
		fat.FreeUserBlocks(int(c.Root().UserBlocks)), c.Root().UserBlocks)
}

// WriteFileList writes the directory listing of c, one line per file.
// Files whose header could not be decoded are listed with the error.
func WriteFileList(w io.Writer, c *vms.Card) {

	fmt.Fprintf(w, "\n%s\n\n", c.Name())

	stats, files, err := c.Ls()
	if files == nil && err != nil {
		fmt.Fprintf(w, "error listing files: %v\n\n", err)
		return
	}

	for _, f := range files {
		e := f.Entry()
		fmt.Fprintf(w, "%s  %-12s  %-4s %s  %3d blk  %s  ",
			e.Ref(), e.Title(), e.TypeName(), protection(e), e.Size, e.Created)

		if h := f.Header(); h != nil {
			fmt.Fprintf(w, "%-16s  %s", h.VMSDescription(), h.Application())
			if e.IsData() {
				fmt.Fprintf(w, "  %s", humanize.Bytes(uint64(h.DataSize)))
			}
			fmt.Fprintln(w)
		} else {
			fmt.Fprintf(w, "error: %v\n", f.Err())
		}
	}

	fmt.Fprintf(w, "\n%d of %d blocks used (%s free)\n\n",
		stats.Used(), stats.UserBlocks(),
		humanize.Bytes(uint64(stats.Free()*vms.BlockSize)))
}

// WriteHeader writes the details of entry e and its file header.
func WriteHeader(w io.Writer, c *vms.Card, e *vms.DirEntry) error {

	h, err := c.Header(e)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s %s\n\n", e.Ref(), e.Title())
	fmt.Fprintf(w, "type:              %s\n", e.TypeName())
	fmt.Fprintf(w, "copy protected:    %s\n", yesNo(e.IsProtected()))
	fmt.Fprintf(w, "created:           %s\n", e.Created)
	fmt.Fprintf(w, "first block:       %d\n", e.FirstBlock)
	fmt.Fprintf(w, "size:              %d blocks\n", e.Size)
	fmt.Fprintf(w, "header block:      %d\n", h.Block)
	fmt.Fprintf(w, "VMS description:   %s\n", h.VMSDescription())

	if h.Hidden {
		fmt.Fprintf(w, "DC description:    %s\n", h.DCDescription())
	} else {
		first, second := h.DCDescriptionHalves()
		fmt.Fprintf(w, "DC description:    %s\n", first)
		fmt.Fprintf(w, "                   %s\n", second)
	}

	fmt.Fprintf(w, "application:       %s\n", h.Application())
	fmt.Fprintf(w, "icons:             %d\n", h.Icons)
	fmt.Fprintf(w, "animation speed:   %d\n", h.AnimationSpeed)
	fmt.Fprintf(w, "eyecatch type:     %d\n", h.GraphicType)
	if e.IsData() {
		fmt.Fprintf(w, "CRC:               %04x\n", h.CRC)
		fmt.Fprintf(w, "data size:         %d bytes\n", h.DataSize)
	}
	fmt.Fprintln(w)

	return nil
}

// WriteBlockDump writes a hex dump of block ix.
func WriteBlockDump(w io.Writer, c *vms.Card, ix int) error {

	data, err := c.Image().ReadBlock(ix)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nblock %d\n\n", ix)
	d := hex.Dumper(w)
	d.Write(data)
	d.Close()
	fmt.Fprintln(w)

	return nil
}

//
func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

//
func protection(e *vms.DirEntry) string {
	if e.IsProtected() {
		return "P"
	}
	return "-"
}
