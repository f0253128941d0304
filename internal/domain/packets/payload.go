package packets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
)

type SectionType string

const (
	SectionSummary SectionType = "summary"
	SectionGallery SectionType = "gallery"
	SectionTable   SectionType = "table"
	SectionText    SectionType = "text"
)

var sectionTypes = []SectionType{SectionSummary, SectionGallery, SectionTable, SectionText}

func SectionTypes() []SectionType {
	out := make([]SectionType, len(sectionTypes))
	copy(out, sectionTypes)
	return out
}

func (t SectionType) Valid() bool {
	switch t {
	case SectionSummary, SectionGallery, SectionTable, SectionText:
		return true
	default:
		return false
	}
}

func ParseSectionType(raw string) (SectionType, error) {
	t := SectionType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		names := make([]string, 0, len(sectionTypes))
		for _, st := range SectionTypes() {
			names = append(names, string(st))
		}
		return "", fmt.Errorf("%w: unknown section type %q (want one of %s)", pkgerrors.ErrInvalidArgument, raw, strings.Join(names, ", "))
	}
	return t, nil
}

// Payload is the typed content of a section. The concrete types are
// SummaryPayload, TextPayload, GalleryPayload and TablePayload.
type Payload interface {
	Type() SectionType
	isPayload()
}

type SummaryPayload struct {
	Text string
}

type TextPayload struct {
	Text string
}

type GalleryPayload struct {
	Images []string `json:"images"`
}

// TablePayload rows are not checked against the header width.
type TablePayload struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (SummaryPayload) Type() SectionType { return SectionSummary }
func (TextPayload) Type() SectionType    { return SectionText }
func (GalleryPayload) Type() SectionType { return SectionGallery }
func (TablePayload) Type() SectionType   { return SectionTable }

func (SummaryPayload) isPayload() {}
func (TextPayload) isPayload()    {}
func (GalleryPayload) isPayload() {}
func (TablePayload) isPayload()   {}

// DecodePayload interprets a stored content/data pair for the given
// section type. Missing content or data decodes to an empty payload.
func DecodePayload(t SectionType, content *string, data datatypes.JSON) (Payload, error) {
	text := ""
	if content != nil {
		text = *content
	}
	switch t {
	case SectionSummary:
		return SummaryPayload{Text: text}, nil
	case SectionText:
		return TextPayload{Text: text}, nil
	case SectionGallery:
		var g GalleryPayload
		if err := decodeData(data, &g); err != nil {
			return nil, fmt.Errorf("gallery data: %w", err)
		}
		if g.Images == nil {
			g.Images = []string{}
		}
		return g, nil
	case SectionTable:
		var tp TablePayload
		if err := decodeData(data, &tp); err != nil {
			return nil, fmt.Errorf("table data: %w", err)
		}
		if tp.Headers == nil {
			tp.Headers = []string{}
		}
		if tp.Rows == nil {
			tp.Rows = [][]string{}
		}
		return tp, nil
	default:
		return nil, fmt.Errorf("%w: unknown section type %q", pkgerrors.ErrInvalidArgument, string(t))
	}
}

// EncodePayload produces the content/data columns for p. Text variants
// leave data empty; structured variants leave content empty.
func EncodePayload(p Payload) (*string, datatypes.JSON, error) {
	switch v := p.(type) {
	case SummaryPayload:
		return textPtr(v.Text), nil, nil
	case TextPayload:
		return textPtr(v.Text), nil, nil
	case GalleryPayload:
		if v.Images == nil {
			v.Images = []string{}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, nil, err
		}
		return nil, datatypes.JSON(b), nil
	case TablePayload:
		if v.Headers == nil {
			v.Headers = []string{}
		}
		if v.Rows == nil {
			v.Rows = [][]string{}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, nil, err
		}
		return nil, datatypes.JSON(b), nil
	case nil:
		return nil, nil, fmt.Errorf("%w: nil payload", pkgerrors.ErrInvalidArgument)
	default:
		return nil, nil, fmt.Errorf("%w: unsupported payload %T", pkgerrors.ErrInvalidArgument, p)
	}
}

// BuildPayload validates raw API input for a section type and returns the
// typed payload.
func BuildPayload(t SectionType, content *string, data json.RawMessage) (Payload, error) {
	p, err := DecodePayload(t, content, datatypes.JSON(data))
	if err != nil {
		if t.Valid() {
			return nil, fmt.Errorf("%w: %v", pkgerrors.ErrInvalidArgument, err)
		}
		return nil, err
	}
	return p, nil
}

func decodeData(data datatypes.JSON, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, dst)
}

func textPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
