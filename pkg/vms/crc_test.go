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

func TestCRC16(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint16
	}{
		{"", 0x0000},
		{"123456789", 0x31c3},
		{"A", 0x58e5},
	} {
		if got := CRC16([]byte(tc.in)); got != tc.want {
			t.Errorf("CRC16(%q) = %04x, want %04x", tc.in, got, tc.want)
		}
	}
}

func TestCRC16AppendedCheckIsZero(t *testing.T) {
	data := []byte("VISUAL MEMORY")
	crc := CRC16(data)
	data = append(data, byte(crc>>8), byte(crc))
	if got := CRC16(data); got != 0 {
		t.Errorf("CRC over data plus checksum = %04x, want 0", got)
	}
}
