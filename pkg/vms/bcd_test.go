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
	"time"
)

func TestTimestamp(t *testing.T) {

	ts, err := DecodeTimestamp([]byte{0x19, 0x99, 0x11, 0x01, 0x22, 0x50, 0x12, 0x00})
	if err != nil {
		t.Fatal(err)
	}

	if s := ts.String(); s != "1999-11-01 22:50:12" {
		t.Errorf("got %q", s)
	}

	tm, err := ts.Time()
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(1999, 11, 1, 22, 50, 12, 0, time.UTC)
	if !tm.Equal(want) {
		t.Errorf("got time %v, want %v", tm, want)
	}

	if back := ToTimestamp(want); back != ts {
		t.Errorf("got timestamp %+v, want %+v", back, ts)
	}
}

func TestTimestampInvalid(t *testing.T) {

	for _, raw := range [][]byte{
		{0x19, 0x9a, 0x11, 0x01, 0x22, 0x50, 0x12, 0x00},
		{0x19, 0x99, 0x13, 0x01, 0x22, 0x50, 0x12, 0x00},
		{0x20, 0x01, 0x02, 0x30, 0x00, 0x00, 0x00, 0x00},
		{0x20, 0x01, 0x02, 0x01, 0x24, 0x00, 0x00, 0x00},
	} {
		ts, err := DecodeTimestamp(raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ts.Time(); err == nil {
			t.Errorf("%x: expected error", raw)
		}
		if s := ts.String(); len(s) != len("CCYY-MM-DD hh:mm:ss") {
			t.Errorf("%x: raw rendering failed: %q", raw, s)
		}
	}

	if _, err := DecodeTimestamp([]byte{1, 2, 3}); err == nil {
		t.Errorf("expected error for short input")
	}
}
