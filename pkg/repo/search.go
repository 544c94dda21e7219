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
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"
	log "github.com/sirupsen/logrus"
)

// document fields and how matches on them are reported
var matchFields = map[string]string{
	"Name":                "image",
	"Files.Name":          "name",
	"Files.Description":   "description",
	"Files.DCDescription": "dc-description",
	"Files.App":           "app",
}

// SearchResult lists the images matching a search, best first.
type SearchResult struct {
	Hits     []*SearchHit `json:"hits"`
	Total    uint64       `json:"total"`
	Complete bool         `json:"complete"`
}

// SearchHit is an image matching a search, together with the files on it
// that matched.
type SearchHit struct {
	Image   string   `json:"image"`
	Matches []*Match `json:"matches,omitempty"`
}

// Match says which field of which file matched. For a match on the image
// name itself, Entry and File are empty.
type Match struct {
	Entry string `json:"entry,omitempty"`
	File  string `json:"file,omitempty"`
	Field string `json:"field"`
}

// Search looks for term in image names, file names, descriptions and
// application ids. At most max hits are returned.
func (i *Index) Search(term string, max int) (*SearchResult, error) {

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("no search term")
	}
	if max < 1 {
		return nil, fmt.Errorf("invalid max hits: %d", max)
	}

	log.WithFields(log.Fields{"term": term, "max": max}).Debug("searching")

	req := bleve.NewSearchRequestOptions(
		bleve.NewQueryStringQuery(term), max+1, 0, false)
	req.Fields = []string{"Files.Name"}
	req.IncludeLocations = true

	res, err := i.index.Search(req)
	if err != nil {
		return nil, err
	}

	ret := &SearchResult{
		Hits:     make([]*SearchHit, 0, len(res.Hits)),
		Total:    res.Total,
		Complete: len(res.Hits) <= max,
	}

	for _, h := range res.Hits {
		if len(ret.Hits) == max {
			break
		}
		ret.Hits = append(ret.Hits, newSearchHit(h))
	}

	return ret, nil
}

// newSearchHit resolves the term locations of a document match to the files
// they belong to. The first array position of a location is the position of
// the file in the image directory.
func newSearchHit(h *search.DocumentMatch) *SearchHit {

	names := storedStrings(h.Fields["Files.Name"])

	type key struct {
		pos   int
		field string
	}
	seen := map[key]bool{}

	for field, terms := range h.Locations {
		label, ok := matchFields[field]
		if !ok {
			continue
		}
		for _, locs := range terms {
			for _, l := range locs {
				k := key{pos: -1, field: label}
				if field != "Name" && len(l.ArrayPositions) > 0 {
					k.pos = int(l.ArrayPositions[0])
				}
				seen[k] = true
			}
		}
	}

	keys := make([]key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].pos != keys[b].pos {
			return keys[a].pos < keys[b].pos
		}
		return keys[a].field < keys[b].field
	})

	ret := &SearchHit{Image: h.ID}
	for _, k := range keys {
		m := &Match{Field: k.field}
		if k.pos >= 0 {
			m.Entry = fmt.Sprintf("#%03d", k.pos)
			if k.pos < len(names) {
				m.File = names[k.pos]
			}
		}
		ret.Matches = append(ret.Matches, m)
	}

	return ret
}

// storedStrings returns a stored field value as a list. Bleve hands out a
// single value as is, and several values as a slice.
func storedStrings(v interface{}) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []interface{}:
		ret := make([]string, 0, len(val))
		for _, s := range val {
			str, _ := s.(string)
			ret = append(ret, str)
		}
		return ret
	}
	return nil
}
