package airtable

import "encoding/json"

const (
	FieldImages = "Images"
	FieldVideos = "Videos"

	fieldPrompt = "Prompt"
)

// Attachment is one entry of a media-reference field.
type Attachment struct {
	Id       string `json:"id"`
	Url      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size,omitempty"`
}

// Record is a row of the generation table. Fields are kept raw since the
// media field requested varies per query.
type Record struct {
	Id     string                     `json:"id"`
	Fields map[string]json.RawMessage `json:"fields"`
}

func (r Record) Prompt() string {
	var prompt string

	if raw, ok := r.Fields[fieldPrompt]; ok {
		// a malformed prompt is not worth failing a delete over
		_ = json.Unmarshal(raw, &prompt)
	}

	return prompt
}

func (r Record) Media(field string) []Attachment {
	raw, ok := r.Fields[field]
	if !ok {
		return nil
	}

	var attachments []Attachment
	if err := json.Unmarshal(raw, &attachments); err != nil {
		return nil
	}

	return attachments
}

func (r Record) MediaCount(field string) int {
	return len(r.Media(field))
}

type recordList struct {
	Records []Record `json:"records"`
}
