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
	"fmt"
	"net/http"
	"strings"

	"github.com/xelalexv/vmutool/pkg/repo"
)

//
func (a *api) search(w http.ResponseWriter, req *http.Request) {

	if a.index == nil {
		handleError(fmt.Errorf("search index not available"),
			http.StatusServiceUnavailable, w)
		return
	}

	items, err := getIntArg(req, "items", 100)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	res, err := a.index.Search(getArg(req, "term"), items)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	if wantsJSON(req) {
		sendJSONReply(res, http.StatusOK, w)
		return
	}

	var sb strings.Builder
	writeSearchResult(&sb, res)
	sendReply([]byte(sb.String()), http.StatusOK, w)
}

// writeSearchResult lists each hit as a repo reference, followed by the
// files on that image which matched.
func writeSearchResult(sb *strings.Builder, res *repo.SearchResult) {

	for _, h := range res.Hits {
		fmt.Fprintf(sb, "%s%s\n", repo.RefRepo, h.Image)
		for _, m := range h.Matches {
			if m.Entry == "" {
				fmt.Fprintf(sb, "    %-4s  %-12s  %s\n", "", "", m.Field)
			} else {
				fmt.Fprintf(sb, "    %-4s  %-12s  %s\n", m.Entry, m.File, m.Field)
			}
		}
	}

	more := ""
	if !res.Complete {
		more = fmt.Sprintf(", showing first %d", len(res.Hits))
	}
	fmt.Fprintf(sb, "\ntotal hits: %d%s\n", res.Total, more)
}
