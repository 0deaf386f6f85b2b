// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Atom feed XML structures. Only elements in the Atom namespace are matched;
// arXiv extension elements are ignored.
type atomFeed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	ID        string       `xml:"http://www.w3.org/2005/Atom id"`
	Title     string       `xml:"http://www.w3.org/2005/Atom title"`
	Summary   string       `xml:"http://www.w3.org/2005/Atom summary"`
	Published string       `xml:"http://www.w3.org/2005/Atom published"`
	Authors   []atomAuthor `xml:"http://www.w3.org/2005/Atom author"`
	Links     []atomLink   `xml:"http://www.w3.org/2005/Atom link"`
}

type atomAuthor struct {
	Name string `xml:"http://www.w3.org/2005/Atom name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
}

// Parse decodes an Atom feed and returns one Article per entry in document
// order. Entries missing sub-elements produce empty fields rather than an
// error. A feed with no entries returns an empty slice.
func Parse(r io.Reader) ([]types.Article, error) {
	var f atomFeed
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing Atom feed: %w", err)
	}

	articles := make([]types.Article, 0, len(f.Entries))
	for _, entry := range f.Entries {
		articles = append(articles, entry.article())
	}
	return articles, nil
}

// ParseFile reads and parses the feed stored at path.
func ParseFile(path string) ([]types.Article, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed file: %w", err)
	}
	defer fh.Close()

	return Parse(fh)
}

func (e atomEntry) article() types.Article {
	a := types.Article{
		ID:            strings.TrimSpace(e.ID),
		Title:         strings.TrimSpace(e.Title),
		PublishedDate: strings.TrimSpace(e.Published),
		Abstract:      strings.TrimSpace(e.Summary),
		Authors:       make([]string, 0, len(e.Authors)),
	}
	for _, au := range e.Authors {
		a.Authors = append(a.Authors, strings.TrimSpace(au.Name))
	}
	for _, l := range e.Links {
		if l.Title == "pdf" {
			a.PDFLink = strings.TrimSpace(l.Href)
			break
		}
	}
	return a
}
