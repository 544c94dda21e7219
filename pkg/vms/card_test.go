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
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func TestCardSingleEntry(t *testing.T) {

	ti := newTestImage(t)
	ti.putEntry(253, 0, newEntry(FileTypeData, "SAVE1       ", 10, 1, 0))
	ti.writeBlock(10, newHeader("FROM BLOCK 10", "", "APP").Encode())

	card, err := NewCard("test", ti.data)
	if err != nil {
		t.Fatal(err)
	}

	root := card.Root()
	if root.FatBlock != 254 || root.FatSize != 1 || root.DirBlock != 253 ||
		root.DirSize != 13 || root.UserBlocks != 200 {
		t.Fatalf("unexpected root block: %+v", root)
	}

	stats, files, err := card.Ls()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}

	f := files[0]
	if f.Entry().Index != 0 || f.Name() != "SAVE1" {
		t.Errorf("unexpected entry: %+v", f.Entry())
	}
	if f.Header() == nil || f.Header().Block != 10 ||
		f.Header().VMSDescription() != "FROM BLOCK 10" {
		t.Errorf("unexpected header: %+v", f.Header())
	}
	if f.GetAnnotation("file-type").String() != "data" {
		t.Errorf("unexpected file type annotation")
	}

	if !stats.FromFAT() || stats.UserBlocks() != 200 || stats.Free() != 200 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestCardLsContinuesAfterBadHeader(t *testing.T) {

	ti := newTestImage(t)
	ti.putEntry(253, 0, newEntry(FileTypeData, "GOOD1", 10, 1, 0))
	ti.putEntry(253, 1, newEntry(FileTypeData, "BAD", 255, 1, 3))
	ti.putEntry(253, 2, newEntry(FileTypeGame, "GOOD2", 0, 5, 1))
	ti.putEntry(252, 0, newEntry(FileTypeData, "BAD2", 0xffff, 1, 0))

	card, err := NewCard("test", ti.data)
	if err != nil {
		t.Fatal(err)
	}

	_, files, err := card.Ls()
	if len(files) != 4 {
		t.Fatalf("got %d files, want 4", len(files))
	}
	if errs := multierr.Errors(err); len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got error %v, want %v", err, ErrOutOfRange)
	}

	for ix, bad := range []bool{false, true, false, true} {
		f := files[ix]
		if bad != (f.Err() != nil) || bad != (f.Header() == nil) {
			t.Errorf("file %d: unexpected error state: %v", ix, f.Err())
		}
	}
}

func TestCardNotFormatted(t *testing.T) {
	if _, err := NewCard("blank", make(Image, ImageSize)); !errors.Is(
		err, ErrNotFormatted) {
		t.Errorf("got error %v, want %v", err, ErrNotFormatted)
	}
}

func TestCardStatsWithoutFAT(t *testing.T) {

	ti := newTestImage(t)
	ti.root.FatSize = 0
	ti.writeRoot()
	ti.putEntry(253, 0, newEntry(FileTypeGame, "GAME", 0, 50, 1))

	card, err := NewCard("test", ti.data)
	if err != nil {
		t.Fatal(err)
	}

	stats, _, err := card.Ls()
	if err != nil {
		t.Fatal(err)
	}
	if stats.FromFAT() || stats.Free() != 150 || stats.Used() != 50 {
		t.Errorf("unexpected stats: free %d, used %d", stats.Free(), stats.Used())
	}
}

func TestCardLookup(t *testing.T) {

	ti := newTestImage(t)
	ti.putEntry(253, 0, newEntry(FileTypeData, "ALPHA", 10, 1, 0))
	ti.putEntry(253, 1, newEntry(FileTypeData, "BETA", 11, 1, 0))
	ti.putEntry(253, 2, newEntry(FileTypeData, "0", 12, 1, 0))
	ti.putEntry(253, 3, newEntry(FileTypeGame, "1", 13, 1, 0))

	card, err := NewCard("test", ti.data)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		ref  string
		want string
		fail bool
	}{
		{ref: "#001", want: "BETA"},
		{ref: "#000", want: "ALPHA"},
		{ref: "0", want: "0"},
		{ref: "1", want: "1"},
		{ref: "#003", want: "1"},
		{ref: "2", want: "0"},
		{ref: "BETA", want: "BETA"},
		{ref: "#004", fail: true},
		{ref: "#x", fail: true},
		{ref: "7", fail: true},
		{ref: "GAMMA", fail: true},
	} {
		e, err := card.Lookup(tc.ref)
		if tc.fail {
			if err == nil {
				t.Errorf("%s: expected error", tc.ref)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.ref, err)
		} else if e.Title() != tc.want {
			t.Errorf("%s: got %s, want %s", tc.ref, e.Title(), tc.want)
		}
	}
}
