package main

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Channel struct {
	Title     string
	Thumbnail string
	Items     []Item
}

type Item struct {
	Title        string
	Description  string
	Duration     string
	PublishTime  string
	ThumbnailSrc string
	Link         string
}

func parseChannel(r io.Reader, maxItemCount, maxTextLength int) (Channel, error) {
	var ch Channel

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ch, err
	}

	feedHeader := doc.Find("div.channel-header--content")
	ch.Title = strings.TrimSpace(feedHeader.Find("div.channel-header--title h1").Text())
	ch.Thumbnail, _ = feedHeader.Find("div.channel-header--thumb img").Attr("src")

	ch.Items = []Item{}
	doc.Find("section.channel-listing__container div.videostream.thumbnail__grid--item").EachWithBreak(func(i int, s *goquery.Selection) bool {

		if maxItemCount > 0 && len(ch.Items) == maxItemCount {
			return false
		}

		item := Item{}
		item.Duration = strings.TrimSpace(s.Find("div.videostream__badge").Text())

		item.Title = strings.TrimSpace(s.Find("h3.thumbnail__title").Text())
		if item.Title == "" {
			item.Title = "unknown title"
		}
		item.Description = strings.TrimSpace(s.Find("div.videostream__description").Text())
		if item.Description == "" {
			item.Description = "unknown description"
		}

		if maxTextLength > 0 {
			item.Title = truncate(item.Title, maxTextLength)
			item.Description = truncate(item.Description, maxTextLength)
		}

		item.PublishTime, _ = s.Find("div.videostream__data time").Attr("datetime")

		item.Link = "https://" + rumbleHost
		href, _ := s.Find("a.videostream__link").Attr("href")
		if href != "" {
			item.Link += href
		}

		item.ThumbnailSrc, _ = s.Find("img.thumbnail__image").Attr("src")

		ch.Items = append(ch.Items, item)
		return true
	})

	return ch, nil
}

// truncate cuts on a rune boundary.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
