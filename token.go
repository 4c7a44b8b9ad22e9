package main

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const tokenFieldName = "authenticity_token"

var (
	ErrFormNotFound = errors.New("upload form not found")
	ErrTokenMissing = errors.New("CSRF token not found in the page")
)

// extractToken locates the upload form in an admin page and returns the CSRF
// token embedded in it. The token value is returned verbatim. A missing form
// usually means the session cookie is not (or no longer) authenticated.
func extractToken(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	var form *goquery.Selection
	doc.Find("form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.AttrOr("action", "") == uploadsPath {
			form = s
			return false
		}
		return true
	})
	if form == nil {
		return "", ErrFormNotFound
	}

	token := ""
	found := false
	form.Find("input").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.AttrOr("name", "") != tokenFieldName {
			return true
		}
		token, found = s.Attr("value")
		return false
	})
	if !found {
		return "", ErrTokenMissing
	}
	return token, nil
}

// errorClasses are the markers Rails renders validation feedback under.
var errorClasses = []string{"error_messages", "alert", "flash", "field_with_errors"}

// scrapeErrorMessages collects the trimmed text of every element carrying one
// of the validation-error classes, in document order.
func scrapeErrorMessages(page string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var messages []string
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		if !hasAnyClass(s, errorClasses) {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			messages = append(messages, text)
		}
	})
	return messages
}

func hasAnyClass(s *goquery.Selection, classes []string) bool {
	for _, have := range strings.Fields(s.AttrOr("class", "")) {
		for _, want := range classes {
			if have == want {
				return true
			}
		}
	}
	return false
}
