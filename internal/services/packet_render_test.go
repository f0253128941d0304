package services

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	types "github.com/support371/Asset-Packet/internal/domain"
)

func mustSection(t *testing.T, id uint, title string, order int, p types.Payload) *types.Section {
	t.Helper()
	s, err := types.NewSection(1, title, order, p)
	if err != nil {
		t.Fatalf("NewSection: %v", err)
	}
	s.ID = id
	return s
}

func TestRenderMarkdown(t *testing.T) {
	desc := "Quarterly overview."
	p := types.ComposePacket(&types.Packet{ID: 1, Title: "Q1 Report", Description: &desc}, []*types.Section{
		mustSection(t, 1, "Summary", 1, types.SummaryPayload{Text: "All systems nominal.\nNo incidents."}),
		mustSection(t, 2, "Evidence", 2, types.GalleryPayload{}),
		mustSection(t, 3, "Holdings", 3, types.TablePayload{
			Headers: []string{"Asset", "Value"},
			Rows:    [][]string{{"Node A"}, {"Tower", "8500000", "extra"}, {"a|b", "1"}},
		}),
		mustSection(t, 4, "Summary", 4, types.TextPayload{Text: "Closing notes."}),
	})

	want := `# Q1 Report

Quarterly overview.

## Contents

1. [Summary](#summary)
2. [Evidence](#evidence)
3. [Holdings](#holdings)
4. [Summary](#summary-1)

## Summary

> All systems nominal.
> No incidents.

## Evidence

_No images available_

## Holdings

| Asset | Value |
| --- | --- |
| Node A |  |
| Tower | 8500000 |
| a\|b | 1 |

## Summary

Closing notes.
`
	if diff := cmp.Diff(want, RenderMarkdown(p)); diff != "" {
		t.Fatalf("RenderMarkdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMarkdownEdgeCases(t *testing.T) {
	if got := RenderMarkdown(nil); got != "" {
		t.Fatalf("nil packet: expected empty output, got %q", got)
	}

	empty := types.ComposePacket(&types.Packet{ID: 2, Title: "Empty"}, nil)
	if diff := cmp.Diff("# Empty\n\n_This packet has no sections._\n", RenderMarkdown(empty)); diff != "" {
		t.Fatalf("empty packet (-want +got):\n%s", diff)
	}

	gallery := types.ComposePacket(&types.Packet{ID: 3, Title: "Pics"}, []*types.Section{
		mustSection(t, 9, "Shots", 0, types.GalleryPayload{Images: []string{"https://x/1.png", "https://x/2.png"}}),
		mustSection(t, 10, "Headerless", 1, types.TablePayload{Rows: [][]string{{"1"}}}),
	})
	out := RenderMarkdown(gallery)
	for _, frag := range []string{
		"- ![Image 1](https://x/1.png)\n- ![Image 2](https://x/2.png)\n",
		"## Headerless\n\n_No table data._\n",
	} {
		if !strings.Contains(out, frag) {
			t.Fatalf("expected %q in output:\n%s", frag, out)
		}
	}
}

func TestRenderMarkdownGalleryDestinations(t *testing.T) {
	p := types.ComposePacket(&types.Packet{ID: 4, Title: "Links"}, []*types.Section{
		mustSection(t, 11, "Shots", 0, types.GalleryPayload{Images: []string{
			"https://x/site map.png",
			"https://x/a_(1).png",
			"https://x/<b>.png",
		}}),
	})
	want := "- ![Image 1](<https://x/site map.png>)\n" +
		"- ![Image 2](<https://x/a_(1).png>)\n" +
		"- ![Image 3](<https://x/%3Cb%3E.png>)\n"
	if out := RenderMarkdown(p); !strings.Contains(out, want) {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
}
