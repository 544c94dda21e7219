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
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRootRoundTrip(t *testing.T) {

	want := &RootBlock{
		CustomColor: true,
		ColorRed:    0x12,
		ColorGreen:  0x34,
		ColorBlue:   0x56,
		ColorAlpha:  100,
		Created:     Timestamp{0x19, 0x99, 0x11, 0x01, 0x22, 0x50, 0x12, 0x03},
		FatBlock:    254,
		FatSize:     1,
		DirBlock:    253,
		DirSize:     13,
		IconShape:   0x0123,
		UserBlocks:  200,
	}

	img := make(Image, ImageSize)
	copy(img[RootBlockIndex*BlockSize:], want.Encode())

	got, err := DecodeRoot(img)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected root block: diff (-want +got):\n%s", diff)
	}

	wantColor := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 100}
	if c := got.Color(); c != wantColor {
		t.Errorf("got color %v, want %v", c, wantColor)
	}
}

func TestDecodeRootLayout(t *testing.T) {

	img := make(Image, ImageSize)
	root := img[RootBlockIndex*BlockSize:]
	for ix := 0; ix < 16; ix++ {
		root[ix] = 0x55
	}
	root[0x10] = 1
	root[0x11], root[0x12], root[0x13], root[0x14] = 1, 2, 3, 4 // b, g, r, a
	root[0x46], root[0x47] = 0xfe, 0x00
	root[0x4c], root[0x4d] = 0x0d, 0x00
	root[0x4e], root[0x4f] = 0x34, 0x12
	root[0x50], root[0x51] = 0xc8, 0x00

	got, err := DecodeRoot(img)
	if err != nil {
		t.Fatal(err)
	}
	if got.ColorBlue != 1 || got.ColorGreen != 2 || got.ColorRed != 3 ||
		got.ColorAlpha != 4 {
		t.Errorf("unexpected color components: %+v", got)
	}
	if got.FatBlock != 254 || got.DirSize != 13 || got.IconShape != 0x1234 ||
		got.UserBlocks != 200 {
		t.Errorf("unexpected little endian decoding: %+v", got)
	}
}

func TestDecodeRootNotFormatted(t *testing.T) {

	for ix := 0; ix < FormatMarkerLength; ix++ {
		img := make(Image, ImageSize)
		copy(img[RootBlockIndex*BlockSize:], NewDefaultRoot().Encode())
		img[RootBlockIndex*BlockSize+ix] = 0x54

		if _, err := DecodeRoot(img); !errors.Is(err, ErrNotFormatted) {
			t.Errorf("marker byte %d: got error %v, want %v",
				ix, err, ErrNotFormatted)
		}
	}

	if _, err := DecodeRoot(make(Image, ImageSize)); !errors.Is(
		err, ErrNotFormatted) {
		t.Errorf("blank image: got error %v, want %v", err, ErrNotFormatted)
	}
}

func TestDecodeRootTruncated(t *testing.T) {
	if _, err := DecodeRoot(make(Image, ImageSize-1)); !errors.Is(
		err, ErrTruncated) {
		t.Errorf("got error %v, want %v", err, ErrTruncated)
	}
}
