package feed

import (
	"bytes"
	"errors"
	"log"
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// ErrUnrecognizedFormat reports a payload that is neither RSS nor Atom.
var ErrUnrecognizedFormat = errors.New("feed: unrecognized format")

// Decode turns a raw response body into entries. Sources rarely send a
// trustworthy content type, so the format is probed: RSS first, Atom
// second. Items missing a parsable publish date are dropped one by one;
// the rest of the document still decodes.
func Decode(data []byte) ([]Entry, error) {
	rssParser := &rss.Parser{}
	if channel, err := rssParser.Parse(bytes.NewReader(data)); err == nil {
		return entriesFromRSS(channel), nil
	}

	atomParser := &atom.Parser{}
	if doc, err := atomParser.Parse(bytes.NewReader(data)); err == nil {
		return entriesFromAtom(doc), nil
	}

	return nil, ErrUnrecognizedFormat
}

func entriesFromRSS(channel *rss.Feed) []Entry {
	entries := make([]Entry, 0, len(channel.Items))
	for _, item := range channel.Items {
		if item == nil {
			continue
		}
		if item.PubDateParsed == nil {
			log.Printf("feed: dropping item without publish date: %q", item.Title)
			continue
		}
		published := item.PubDateParsed.Local()

		// Dublin Core creators are more reliably populated than the
		// plain RSS author field, so they win when present.
		var authors []string
		if item.DublinCoreExt != nil {
			authors = append(authors, item.DublinCoreExt.Creator...)
		}
		if len(authors) == 0 && item.Author != "" {
			authors = []string{item.Author}
		}

		entries = append(entries, Entry{
			ID:          Identify(optional(item.Title), optional(item.Description), published),
			Title:       item.Title,
			URL:         item.Link,
			Authors:     authors,
			Summary:     item.Description,
			Content:     item.Content,
			PublishedAt: published,
		})
	}
	return entries
}

func entriesFromAtom(doc *atom.Feed) []Entry {
	entries := make([]Entry, 0, len(doc.Entries))
	for _, item := range doc.Entries {
		if item == nil {
			continue
		}
		published := atomPublished(item.UpdatedParsed, item.PublishedParsed)
		if published.IsZero() {
			log.Printf("feed: dropping entry without updated/published date: %q", item.Title)
			continue
		}

		authors := make([]string, 0, len(item.Authors))
		for _, person := range item.Authors {
			if person != nil && person.Name != "" {
				authors = append(authors, person.Name)
			}
		}

		var content string
		if item.Content != nil {
			content = item.Content.Value
		}

		entries = append(entries, Entry{
			ID:          Identify(optional(item.Title), optional(item.Summary), published),
			Title:       item.Title,
			URL:         atomLink(item.Links),
			Authors:     authors,
			Summary:     item.Summary,
			Content:     content,
			PublishedAt: published,
		})
	}
	return entries
}

// atomLink prefers the rel="alternate" link, the one that points at the
// human-readable page, over whatever happens to be listed first.
func atomLink(links []*atom.Link) string {
	for _, link := range links {
		if link != nil && link.Rel == "alternate" {
			return link.Href
		}
	}
	for _, link := range links {
		if link != nil {
			return link.Href
		}
	}
	return ""
}

func atomPublished(updated, published *time.Time) time.Time {
	if updated != nil {
		return updated.Local()
	}
	if published != nil {
		return published.Local()
	}
	return time.Time{}
}
