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

package control

import (
	"bytes"
	"io"
	"net/http"

	"github.com/xelalexv/vmutool/pkg/render"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func (a *api) info(w http.ResponseWriter, req *http.Request) {

	card := a.loadCard(w, req)
	if card == nil {
		return
	}

	if wantsJSON(req) {
		sendJSONReply(render.NewRootView(card), http.StatusOK, w)
		return
	}

	a.streamText(w, func(out io.Writer) { render.WriteRoot(out, card) })
}

//
func (a *api) list(w http.ResponseWriter, req *http.Request) {

	card := a.loadCard(w, req)
	if card == nil {
		return
	}

	if wantsJSON(req) {
		view, err := render.NewListingView(card)
		if handleError(err, http.StatusUnprocessableEntity, w) {
			return
		}
		sendJSONReply(view, http.StatusOK, w)
		return
	}

	a.streamText(w, func(out io.Writer) { render.WriteFileList(out, card) })
}

//
func (a *api) fat(w http.ResponseWriter, req *http.Request) {

	card := a.loadCard(w, req)
	if card == nil {
		return
	}

	if wantsJSON(req) {
		view, err := render.NewFatView(card)
		if handleError(err, http.StatusUnprocessableEntity, w) {
			return
		}
		sendJSONReply(view, http.StatusOK, w)
		return
	}

	a.streamText(w, func(out io.Writer) { render.WriteFAT(out, card) })
}

//
func (a *api) header(w http.ResponseWriter, req *http.Request) {

	card := a.loadCard(w, req)
	if card == nil {
		return
	}

	entry, err := card.Lookup(getArg(req, "entry"))
	if handleError(err, http.StatusNotFound, w) {
		return
	}

	if wantsJSON(req) {
		h, err := card.Header(entry)
		sendJSONReply(render.NewFileView(entry, h, err), http.StatusOK, w)
		return
	}

	var buf bytes.Buffer
	if handleError(render.WriteHeader(&buf, card, entry),
		http.StatusUnprocessableEntity, w) {
		return
	}
	sendReply(buf.Bytes(), http.StatusOK, w)
}

// dump sends a hex dump of a block, given either directly by the block
// argument, or as the header block of the file given by entry.
func (a *api) dump(w http.ResponseWriter, req *http.Request) {

	card := a.loadCard(w, req)
	if card == nil {
		return
	}

	block, err := getIntArg(req, "block", -1)
	if handleError(err, http.StatusBadRequest, w) {
		return
	}

	if ref := getArg(req, "entry"); ref != "" {
		e, err := card.Lookup(ref)
		if handleError(err, http.StatusNotFound, w) {
			return
		}
		block = e.HeaderBlock()
	}

	if block == -1 {
		block = vms.RootBlockIndex
	}

	var buf bytes.Buffer
	if handleError(render.WriteBlockDump(&buf, card, block),
		http.StatusUnprocessableEntity, w) {
		return
	}
	sendReply(buf.Bytes(), http.StatusOK, w)
}

//
func (a *api) streamText(w http.ResponseWriter, write func(io.Writer)) {

	read, pw := io.Pipe()

	go func() {
		write(pw)
		pw.Close()
	}()

	sendStreamReply(read, http.StatusOK, w)
}
