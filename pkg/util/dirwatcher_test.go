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

package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDirWatcher(t *testing.T) {

	dir := t.TempDir()

	dw, err := NewDirWatcher(dir, func(p string) bool {
		return strings.HasSuffix(p, ".vmu")
	})
	if err != nil {
		t.Fatal(err)
	}
	defer dw.Stop()

	events := make(chan WatchEvent, 16)
	flushed := make(chan bool, 16)

	if err := dw.Start(50*time.Millisecond,
		func(e WatchEvent) error {
			events <- e
			return nil
		},
		func() error {
			flushed <- true
			return nil
		}); err != nil {
		t.Fatal(err)
	}

	if err := dw.Start(time.Second, nil, nil); err == nil {
		t.Errorf("second start should fail")
	}

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	card := filepath.Join(dir, "card.vmu")
	if err := os.WriteFile(card, []byte{1}, 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-events:
		if e.Path != card || e.Removed {
			t.Errorf("unexpected event: %+v", e)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}

	select {
	case <-flushed:
	case <-time.After(5 * time.Second):
		t.Fatal("no flush")
	}

	if err := os.Remove(card); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case e := <-events:
			if e.Path != card {
				t.Fatalf("unexpected event: %+v", e)
			}
			if e.Removed {
				return
			}
		case <-deadline:
			t.Fatal("no remove event received")
		}
	}
}
