package xrpc

import (
	json "github.com/goccy/go-json"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type createSessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type sessionResponse struct {
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
	Handle     string `json:"handle"`
	DID        string `json:"did"`
}

type getRecordResponse struct {
	URI   string          `json:"uri"`
	CID   string          `json:"cid"`
	Value json.RawMessage `json:"value"`
}

type putRecordRequest struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	RKey       string `json:"rkey"`
	Record     any    `json:"record"`
}

type labelValueDefinition struct {
	Identifier     string        `json:"identifier"`
	Severity       string        `json:"severity"`
	Blurs          string        `json:"blurs"`
	DefaultSetting string        `json:"defaultSetting,omitempty"`
	AdultOnly      bool          `json:"adultOnly"`
	Locales        []labelLocale `json:"locales"`
}

type labelLocale struct {
	Lang        string `json:"lang"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type postRecord struct {
	Text string `json:"text"`
}

type modEventLabel struct {
	Type            string   `json:"$type"`
	CreateLabelVals []string `json:"createLabelVals"`
	NegateLabelVals []string `json:"negateLabelVals"`
}

type repoRef struct {
	Type string `json:"$type"`
	DID  string `json:"did"`
}

type emitEventRequest struct {
	Event           modEventLabel `json:"event"`
	Subject         repoRef       `json:"subject"`
	CreatedBy       string        `json:"createdBy"`
	SubjectBlobCids []string      `json:"subjectBlobCids"`
}

type repoView struct {
	DID    string `json:"did"`
	Handle string `json:"handle"`
}

func definitionFromWire(d labelValueDefinition) domain.LabelDefinition {
	locales := make([]domain.LabelLocale, len(d.Locales))
	for i, l := range d.Locales {
		locales[i] = domain.LabelLocale{Lang: l.Lang, Name: l.Name, Description: l.Description}
	}
	return domain.LabelDefinition{
		Identifier:     d.Identifier,
		Severity:       d.Severity,
		Blurs:          d.Blurs,
		DefaultSetting: d.DefaultSetting,
		AdultOnly:      d.AdultOnly,
		Locales:        locales,
	}
}

func definitionToWire(d domain.LabelDefinition) labelValueDefinition {
	locales := make([]labelLocale, len(d.Locales))
	for i, l := range d.Locales {
		locales[i] = labelLocale{Lang: l.Lang, Name: l.Name, Description: l.Description}
	}
	return labelValueDefinition{
		Identifier:     d.Identifier,
		Severity:       d.Severity,
		Blurs:          d.Blurs,
		DefaultSetting: d.DefaultSetting,
		AdultOnly:      d.AdultOnly,
		Locales:        locales,
	}
}
