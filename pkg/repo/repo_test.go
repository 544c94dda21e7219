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

package repo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xelalexv/vmutool/pkg/vms"
)

// writeImage writes a formatted image holding one data file named file.
func writeImage(t *testing.T, path, file, desc string) {

	t.Helper()

	img := make([]byte, vms.ImageSize)
	copy(img[vms.RootBlockIndex*vms.BlockSize:], vms.NewDefaultRoot().Encode())

	e := &vms.DirEntry{Type: vms.FileTypeData, FirstBlock: 10, Size: 1}
	e.SetName(file)
	copy(img[vms.DefaultDirBlock*vms.BlockSize:], e.Encode())

	h := &vms.FileHeader{}
	copy(h.VMSDesc[:], desc)
	copy(h.App[:], "TESTAPP")
	copy(img[10*vms.BlockSize:], h.Encode())

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, img, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {

	repo := t.TempDir()
	writeImage(t, filepath.Join(repo, "sub", "card.vmu"), "SAVE1", "HELLO")

	ctx := context.Background()

	card, err := Load(ctx, "repo://sub/card.vmu", repo)
	if err != nil {
		t.Fatal(err)
	}
	if card.Name() != "card" {
		t.Errorf("got name %q", card.Name())
	}

	if _, err := Load(ctx, filepath.Join(repo, "sub", "card.vmu"), ""); err != nil {
		t.Errorf("local file: %v", err)
	}

	for _, ref := range []string{
		"repo://../outside.vmu",
		"repo://sub/../../outside.vmu",
		filepath.Join(repo, "sub", "card.vmu"),
		"",
	} {
		if _, err := Resolve(ctx, ref, repo); err == nil {
			t.Errorf("%q: expected error", ref)
		}
	}

	if _, err := Resolve(ctx, "repo://card.vmu", ""); err == nil {
		t.Errorf("expected error without repository")
	}

	big := filepath.Join(repo, "big.vmu")
	if err := os.WriteFile(big, make([]byte, maxDownload+1), 0644); err != nil {
		t.Fatal(err)
	}
	for _, ref := range []string{"repo://sub", "repo://big.vmu"} {
		if _, err := Resolve(ctx, ref, repo); err == nil ||
			!strings.Contains(err.Error(), "not an image file") {
			t.Errorf("%q: got error %v, want not an image file", ref, err)
		}
	}
}

func TestResolveHTTP(t *testing.T) {

	repo := t.TempDir()
	writeImage(t, filepath.Join(repo, "card.vms"), "SAVE1", "HELLO")

	srv := httptest.NewServer(http.FileServer(http.Dir(repo)))
	defer srv.Close()

	card, err := Load(context.Background(), srv.URL+"/card.vms", "")
	if err != nil {
		t.Fatal(err)
	}
	if card.Name() != "card" {
		t.Errorf("got name %q", card.Name())
	}

	if _, err := Load(context.Background(), srv.URL+"/missing.vms", ""); err == nil {
		t.Errorf("expected error for missing image")
	}
}

func TestIndex(t *testing.T) {

	repo := t.TempDir()
	writeImage(t, filepath.Join(repo, "a", "sonic.vmu"), "SONICADV", "SONIC ADVENTURE")
	writeImage(t, filepath.Join(repo, "b", "crazy.vms"), "CRAZYTAXI", "CRAZY TAXI")
	if err := os.WriteFile(filepath.Join(repo, "notes.txt"),
		[]byte("sonic"), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := NewIndex(filepath.Join(t.TempDir(), "index"), repo)
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Stop()

	if err := idx.Start(); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		term string
		want []*SearchHit
	}{
		{"sonicadv", []*SearchHit{{Image: "a/sonic.vmu", Matches: []*Match{
			{Entry: "#000", File: "SONICADV", Field: "name"}}}}},
		{"taxi", []*SearchHit{{Image: "b/crazy.vms", Matches: []*Match{
			{Entry: "#000", File: "CRAZYTAXI", Field: "description"}}}}},
		{"crazy", []*SearchHit{{Image: "b/crazy.vms", Matches: []*Match{
			{Field: "image"},
			{Entry: "#000", File: "CRAZYTAXI", Field: "description"}}}}},
		{"notes", []*SearchHit{}},
	} {
		res, err := idx.Search(tc.term, 10)
		if err != nil {
			t.Fatalf("%s: %v", tc.term, err)
		}
		if diff := cmp.Diff(tc.want, res.Hits); diff != "" {
			t.Errorf("%s: unexpected hits: diff (-want +got):\n%s", tc.term, diff)
		}
	}

	res, err := idx.Search("testapp", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Hits) != 1 || res.Complete || res.Total != 2 {
		t.Errorf("unexpected limited result: %+v", res)
	}

	if _, err := idx.Search("  ", 10); err == nil {
		t.Errorf("expected error for empty term")
	}

	card, err := idx.Card(context.Background(), "a/sonic.vmu")
	if err != nil {
		t.Fatal(err)
	}
	if card.Name() != "sonic" {
		t.Errorf("got card %q", card.Name())
	}
}
