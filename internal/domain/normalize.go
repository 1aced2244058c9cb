package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Prefixes a curated post must start with to define a label.
const (
	RolePrefix = "Role: "
	MetaPrefix = "Meta: "
)

const commentDelimiter = "//"

var (
	titleWord   = regexp.MustCompile(`\w\S*`)
	apostrophes = strings.NewReplacer("'", "", "’", "")
)

// DerivedLabel is the label parsed out of a curated post.
type DerivedLabel struct {
	Slug        string
	DisplayName string
	IsMeta      bool
}

// DeriveLabel parses post text of the form "Role: Red Panda // notes" into
// slug "red-panda" with display name "Red Panda". Text without a recognized
// prefix, or with nothing left after it, yields ErrNotALabelPost.
func DeriveLabel(text string) (DerivedLabel, error) {
	text = norm.NFC.String(text)

	var body string
	var isMeta bool
	switch {
	case strings.HasPrefix(text, RolePrefix):
		body = strings.TrimPrefix(text, RolePrefix)
	case strings.HasPrefix(text, MetaPrefix):
		body = strings.TrimPrefix(text, MetaPrefix)
		isMeta = true
	default:
		return DerivedLabel{}, ErrNotALabelPost
	}

	body, _, _ = strings.Cut(body, commentDelimiter)
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(body), " ", "-"))
	slug := apostrophes.Replace(name)
	if slug == "" {
		return DerivedLabel{}, ErrNotALabelPost
	}

	return DerivedLabel{
		Slug:        slug,
		DisplayName: TitleCase(strings.ReplaceAll(name, "-", " ")),
		IsMeta:      isMeta,
	}, nil
}

// TitleCase upper-cases the first character of every word and lower-cases
// the rest of it.
func TitleCase(s string) string {
	return titleWord.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
}
