package corpus

import (
	"regexp"
	"strings"
)

// Document is one raw corpus file: a title/category header followed by
// free-form body text.
type Document struct {
	Title    string
	Category string
	Body     string
}

var loremPattern = regexp.MustCompile(`(?i)\blorem ipsum\b`)

// ParseDocument pulls the "Título:"/"Categoria:" header lines out of a raw
// file and joins the remaining lines into the body. Filler lines containing
// lorem ipsum are dropped.
func ParseDocument(raw string) Document {
	var doc Document
	var body []string

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		lowered := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lowered, "título:"), strings.HasPrefix(lowered, "titulo:"):
			doc.Title = strings.TrimSpace(line[strings.Index(line, ":")+1:])
		case strings.HasPrefix(lowered, "categoria:"):
			doc.Category = strings.TrimSpace(line[strings.Index(line, ":")+1:])
		case line != "" && !loremPattern.MatchString(line):
			body = append(body, line)
		}
	}

	doc.Body = strings.Join(body, " ")
	return doc
}
