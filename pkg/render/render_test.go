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
	"bytes"
	"strings"
	"testing"

	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func testCard(t *testing.T) *vms.Card {

	t.Helper()

	img := make(vms.Image, vms.ImageSize)
	put := func(block, off int, data []byte) {
		copy(img[block*vms.BlockSize+off:], data)
	}

	root := vms.NewDefaultRoot()
	root.CustomColor = true
	root.ColorRed, root.ColorGreen, root.ColorBlue, root.ColorAlpha = 1, 2, 3, 255
	put(vms.RootBlockIndex, 0, root.Encode())

	fat := &vms.FatTable{}
	for ix := range fat {
		fat[ix] = vms.FatUnallocated
	}
	fat[10] = vms.FatLastBlock
	put(vms.DefaultFatBlock, 0, fat.Encode())

	save := &vms.DirEntry{Type: vms.FileTypeData, FirstBlock: 10, Size: 1}
	save.SetName("SAVE1")
	put(vms.DefaultDirBlock, 0, save.Encode())

	icon := &vms.DirEntry{Type: vms.FileTypeData, FirstBlock: 11, Size: 1}
	icon.SetName(vms.IconDataName)
	put(vms.DefaultDirBlock, vms.DirEntryLength, icon.Encode())

	broken := &vms.DirEntry{Type: vms.FileTypeGame, FirstBlock: 250, Size: 1,
		HeaderOffset: 10}
	broken.SetName("BROKEN")
	put(vms.DefaultDirBlock-1, 0, broken.Encode())

	h := &vms.FileHeader{DataSize: 2048, CRC: 0xabcd}
	copy(h.VMSDesc[:], "MY SAVE GAME    ")
	copy(h.App[:], "TESTAPP         ")
	put(10, 0, h.Encode())
	put(11, 0, h.Encode())

	card, err := vms.NewCard("test", img)
	if err != nil {
		t.Fatal(err)
	}
	return card
}

func TestWriteRoot(t *testing.T) {
	var buf bytes.Buffer
	WriteRoot(&buf, testCard(t))
	out := buf.String()
	for _, want := range []string{
		"custom color:           Y",
		"color:                  rgba(1, 2, 3, 255)",
		"FAT location:           254",
		"FAT directory size:     13",
		"user blocks:            200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteFileList(t *testing.T) {

	var buf bytes.Buffer
	WriteFileList(&buf, testCard(t))
	out := buf.String()

	for _, want := range []string{
		"#000  SAVE1", "MY SAVE GAME", "TESTAPP", "2.0 kB",
		"#001  ICONDATA_VMS", vms.HiddenMarker,
		"#002  BROKEN", "error:",
		"1 of 200 blocks used",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "#001") && strings.Contains(line, "TESTAPP") {
			t.Errorf("icon data header text not hidden: %s", line)
		}
	}
}

func TestWriteHeader(t *testing.T) {

	c := testCard(t)
	e, err := c.Lookup("#000")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, c, e); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"header block:      10", "CRC:               abcd",
		"data size:         2048 bytes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	e, _ = c.Lookup("BROKEN")
	if err := WriteHeader(&buf, c, e); err == nil {
		t.Errorf("expected error for broken header")
	}
}

func TestWriteFATAndDump(t *testing.T) {

	c := testCard(t)

	var buf bytes.Buffer
	WriteFAT(&buf, c)
	if out := buf.String(); !strings.Contains(out, "199 of 200 user blocks free") ||
		!strings.Contains(out, "END") {
		t.Errorf("unexpected FAT output:\n%s", out)
	}

	buf.Reset()
	if err := WriteBlockDump(&buf, c, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "MY SAVE GAME") {
		t.Errorf("unexpected dump:\n%s", buf.String())
	}
	if err := WriteBlockDump(&buf, c, 256); err == nil {
		t.Errorf("expected error")
	}
}

func TestListingView(t *testing.T) {

	v, err := NewListingView(testCard(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Files) != 3 || v.Free != 199 {
		t.Fatalf("unexpected listing: %+v", v)
	}
	if f := v.Files[0]; f.DataSize == nil || *f.DataSize != 2048 {
		t.Errorf("unexpected data size in %+v", f)
	}
	if f := v.Files[1]; !f.Hidden || f.Application != vms.HiddenMarker {
		t.Errorf("icon data not hidden: %+v", f)
	}
	if f := v.Files[2]; f.Error == "" {
		t.Errorf("expected error for %+v", f)
	}
}
