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
	"bytes"
	"errors"
	"testing"
)

func TestReadBlock(t *testing.T) {

	img := make(Image, ImageSize)
	for ix := range img {
		img[ix] = byte(ix / BlockSize)
	}

	for ix := 0; ix < BlockCount; ix++ {
		b, err := img.ReadBlock(ix)
		if err != nil {
			t.Fatalf("block %d: %v", ix, err)
		}
		if len(b) != BlockSize {
			t.Fatalf("block %d: got %d bytes, want %d", ix, len(b), BlockSize)
		}
		if want := bytes.Repeat([]byte{byte(ix)}, BlockSize); !bytes.Equal(b, want) {
			t.Fatalf("block %d: unexpected content", ix)
		}
		again, _ := img.ReadBlock(ix)
		if !bytes.Equal(b, again) {
			t.Fatalf("block %d: read not deterministic", ix)
		}
		b[0] = 0xff
		if img[ix*BlockSize] != byte(ix) {
			t.Fatalf("block %d: modifying read block changed image", ix)
		}
	}
}

func TestReadBlockErrors(t *testing.T) {

	img := make(Image, 10*BlockSize+100)

	for _, tc := range []struct {
		ix   int
		want error
	}{
		{ix: 9},
		{ix: 10, want: ErrTruncated},
		{ix: 255, want: ErrTruncated},
		{ix: 256, want: ErrOutOfRange},
		{ix: -1, want: ErrOutOfRange},
	} {
		_, err := img.ReadBlock(tc.ix)
		if tc.want == nil {
			if err != nil {
				t.Errorf("block %d: unexpected error: %v", tc.ix, err)
			}
		} else if !errors.Is(err, tc.want) {
			t.Errorf("block %d: got error %v, want %v", tc.ix, err, tc.want)
		}
	}

	if n := img.BlockCount(); n != 10 {
		t.Errorf("got block count %d, want 10", n)
	}
}

func TestNewImageTruncatesExcess(t *testing.T) {
	img := NewImage(make([]byte, ImageSize+4096))
	if len(img) != ImageSize {
		t.Errorf("got image size %d, want %d", len(img), ImageSize)
	}
	if img.BlockCount() != BlockCount {
		t.Errorf("got block count %d, want %d", img.BlockCount(), BlockCount)
	}
}

func TestReadBlocks(t *testing.T) {

	img := make(Image, ImageSize)
	img[3*BlockSize] = 3
	img[4*BlockSize] = 4

	b, err := img.ReadBlocks(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 2*BlockSize || b[0] != 3 || b[BlockSize] != 4 {
		t.Errorf("unexpected block range content")
	}

	for _, r := range [][2]int{
		{255, 2}, {0, 300}, {0, 1 << 40}, {0, 1<<54 + 1}, {-1, 2}, {1, BlockCount},
	} {
		if _, err := img.ReadBlocks(r[0], r[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%d blocks at %d: got error %v, want %v",
				r[1], r[0], err, ErrOutOfRange)
		}
	}

	if b, err := img.ReadBlocks(0, BlockCount); err != nil || len(b) != ImageSize {
		t.Errorf("full image: got %d bytes, %v", len(b), err)
	}
}
