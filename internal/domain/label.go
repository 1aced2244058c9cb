package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Label definition defaults published for every derived label.
const (
	LabelSeverityInform       = "inform"
	LabelBlursNone            = "none"
	LabelDefaultSettingWarn   = "warn"
	LabelLocaleEnglish        = "en"
	metaDescriptionSuffix     = " [Category: Meta]"
	memberDescriptionTemplate = "This user is %s %s!"
)

// PostLabel is the cached label derived from one curated post.
type PostLabel struct {
	PostID      string
	Label       string
	DisplayName string
	IsMeta      bool
	CreatedAt   time.Time
}

// Association links one like of an account to the label it justifies.
type Association struct {
	ID        uuid.UUID
	Account   string
	LikePath  string
	PostURI   string
	Label     string
	CreatedAt time.Time
}

// LabelLocale is the localized name and description of a label.
type LabelLocale struct {
	Lang        string
	Name        string
	Description string
}

// LabelDefinition describes one label value in the labeler catalog.
type LabelDefinition struct {
	Identifier     string
	Severity       string
	Blurs          string
	DefaultSetting string
	AdultOnly      bool
	Locales        []LabelLocale
}

// NewLabelDefinition builds the definition published for a derived label.
func NewLabelDefinition(slug, displayName string, isMeta bool) LabelDefinition {
	return LabelDefinition{
		Identifier:     slug,
		Severity:       LabelSeverityInform,
		Blurs:          LabelBlursNone,
		DefaultSetting: LabelDefaultSettingWarn,
		AdultOnly:      false,
		Locales: []LabelLocale{{
			Lang:        LabelLocaleEnglish,
			Name:        displayName,
			Description: LabelDescription(displayName, isMeta),
		}},
	}
}

// LabelDescription returns the English description of a label.
func LabelDescription(displayName string, isMeta bool) string {
	if isMeta {
		return displayName + metaDescriptionSuffix
	}
	article := "a"
	if startsWithVowel(displayName) {
		article = "an"
	}
	return fmt.Sprintf(memberDescriptionTemplate, article, displayName)
}

func startsWithVowel(s string) bool {
	if s == "" {
		return false
	}
	return strings.ContainsRune("aeiou", []rune(strings.ToLower(s))[0])
}

// LabelCatalog is the set of labels the labeler publishes. Values and
// Definitions are parallel append-only sequences.
type LabelCatalog struct {
	Values      []string
	Definitions []LabelDefinition
	// Raw is the remote record the catalog was read from. Writers keep its
	// other fields intact.
	Raw []byte
}

// Has reports whether slug is already a catalog value.
func (c *LabelCatalog) Has(slug string) bool {
	return slices.Contains(c.Values, slug)
}

// Append adds def unless its identifier is already present.
// It reports whether the catalog changed.
func (c *LabelCatalog) Append(def LabelDefinition) bool {
	if c.Has(def.Identifier) {
		return false
	}
	c.Values = append(c.Values, def.Identifier)
	c.Definitions = append(c.Definitions, def)
	return true
}

// AccountModeration is what the moderation service knows about an account.
type AccountModeration struct {
	DID    string
	Handle string
}
