package services

import (
	"fmt"
	"regexp"
	"strings"

	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/domain/packets"
)

var anchorStrip = regexp.MustCompile(`[^a-z0-9\- ]+`)

// RenderMarkdown renders an aggregated packet as a standalone markdown
// document. Sections appear in the order given.
func RenderMarkdown(p *types.PacketWithSections) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", oneLine(p.Title))
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		b.WriteString(strings.TrimSpace(*p.Description))
		b.WriteString("\n\n")
	}

	if len(p.Sections) == 0 {
		b.WriteString("_This packet has no sections._\n")
		return b.String()
	}

	anchors := sectionAnchors(p.Sections)
	b.WriteString("## Contents\n\n")
	for i, s := range p.Sections {
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, oneLine(s.Title), anchors[i])
	}

	for _, s := range p.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", oneLine(s.Title))
		payload, err := s.Payload()
		if err != nil {
			b.WriteString("_Section content unavailable._\n")
			continue
		}
		renderPayload(&b, payload)
	}
	return b.String()
}

func renderPayload(b *strings.Builder, payload packets.Payload) {
	switch v := payload.(type) {
	case packets.SummaryPayload:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			b.WriteString("_No summary provided._\n")
			return
		}
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(strings.TrimRight("> "+line, " "))
			b.WriteString("\n")
		}
	case packets.TextPayload:
		text := strings.TrimSpace(v.Text)
		if text == "" {
			b.WriteString("_No content._\n")
			return
		}
		b.WriteString(text)
		b.WriteString("\n")
	case packets.GalleryPayload:
		if len(v.Images) == 0 {
			b.WriteString("_No images available_\n")
			return
		}
		for i, img := range v.Images {
			fmt.Fprintf(b, "- ![Image %d](%s)\n", i+1, linkDestination(img))
		}
	case packets.TablePayload:
		renderTable(b, v)
	default:
		b.WriteString("_Section content unavailable._\n")
	}
}

// renderTable pads short rows and truncates long ones to the header width.
func renderTable(b *strings.Builder, t packets.TablePayload) {
	width := len(t.Headers)
	if width == 0 {
		b.WriteString("_No table data._\n")
		return
	}
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" ")
			b.WriteString(tableCell(cell))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	writeRow(t.Headers)
	b.WriteString("|")
	for i := 0; i < width; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
}

func tableCell(s string) string {
	s = strings.ReplaceAll(oneLine(s), "|", `\|`)
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// sectionAnchors mirrors GitHub heading anchors, suffixing repeats.
func sectionAnchors(sections []*types.Section) []string {
	seen := map[string]int{}
	out := make([]string, len(sections))
	for i, s := range sections {
		a := strings.ToLower(oneLine(s.Title))
		a = anchorStrip.ReplaceAllString(a, "")
		a = strings.ReplaceAll(a, " ", "-")
		if a == "" {
			a = "section"
		}
		if n, ok := seen[a]; ok {
			seen[a] = n + 1
			out[i] = fmt.Sprintf("%s-%d", a, n+1)
			continue
		}
		seen[a] = 0
		out[i] = a
	}
	return out
}

var destinationEscaper = strings.NewReplacer("<", "%3C", ">", "%3E", "\\", "%5C", "\n", "%0A", "\r", "%0D")

// linkDestination returns url unchanged when it is a valid bare link
// destination, and in angle brackets otherwise.
func linkDestination(url string) string {
	if url != "" && !strings.ContainsAny(url, " \t\n\r()<>") {
		return url
	}
	return "<" + destinationEscaper.Replace(url) + ">"
}
