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

	log "github.com/sirupsen/logrus"
)

// Image is the raw content of a VMS flash memory dump. It is never modified
// by any of the decoders.
type Image []byte

// NewImage wraps data as an image. Data longer than a full image is cut to
// ImageSize. Shorter data is accepted; reading blocks beyond its end fails
// with ErrTruncated.
func NewImage(data []byte) Image {
	if len(data) > ImageSize {
		log.WithFields(log.Fields{
			"size": len(data), "used": ImageSize}).Warn(
			"image larger than flash memory, ignoring excess data")
		data = data[:ImageSize]
	} else if len(data) < ImageSize {
		log.WithFields(log.Fields{
			"size": len(data), "want": ImageSize}).Warn("image is short")
	}
	return Image(data)
}

// BlockCount returns the number of complete blocks present in the image.
func (img Image) BlockCount() int {
	n := len(img) / BlockSize
	if n > BlockCount {
		n = BlockCount
	}
	return n
}

// ReadBlock returns a copy of the block at index ix.
func (img Image) ReadBlock(ix int) ([]byte, error) {

	if ix < 0 || ix >= BlockCount {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, ix)
	}

	end := (ix + 1) * BlockSize
	if len(img) < end {
		return nil, fmt.Errorf("%w: block %d needs %d bytes, image has %d",
			ErrTruncated, ix, end, len(img))
	}

	log.Tracef("reading block %d", ix)

	ret := make([]byte, BlockSize)
	copy(ret, img[ix*BlockSize:end])
	return ret, nil
}

// ReadBlocks returns a copy of count consecutive blocks starting at ix.
func (img Image) ReadBlocks(ix, count int) ([]byte, error) {

	if count < 0 {
		return nil, fmt.Errorf("invalid block count: %d", count)
	}
	if ix < 0 || count > BlockCount || ix+count > BlockCount {
		return nil, fmt.Errorf("%w: %d blocks starting at %d",
			ErrOutOfRange, count, ix)
	}

	ret := make([]byte, 0, count*BlockSize)
	for b := ix; b < ix+count; b++ {
		d, err := img.ReadBlock(b)
		if err != nil {
			return nil, err
		}
		ret = append(ret, d...)
	}
	return ret, nil
}
