package pdf

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Descriptor is the pdfcpu JSON content description of a layout.
type Descriptor struct {
	Paper  string                    `json:"paper"`
	Origin string                    `json:"origin"`
	Pages  map[string]DescriptorPage `json:"pages"`
}

// DescriptorPage is the content of one page.
type DescriptorPage struct {
	Content DescriptorContent `json:"content"`
}

// DescriptorContent lists the text boxes of a page.
type DescriptorContent struct {
	Text []DescriptorText `json:"text"`
}

// DescriptorText is one positioned text box.
type DescriptorText struct {
	Value string         `json:"value"`
	Pos   [2]float64     `json:"pos"`
	Font  DescriptorFont `json:"font"`
}

// DescriptorFont selects a font by name and size.
type DescriptorFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Descriptor converts the layout into pdfcpu's content description, with
// the origin in the upper left corner.
func (l Layout) Descriptor() Descriptor {
	d := Descriptor{
		Paper:  l.Config.Paper,
		Origin: "UpperLeft",
		Pages:  make(map[string]DescriptorPage, len(l.Pages)),
	}
	for _, page := range l.Pages {
		content := DescriptorContent{Text: make([]DescriptorText, 0, len(page.Lines))}
		for _, line := range page.Lines {
			x := line.X
			for _, segment := range percentSegments(line.Text) {
				content.Text = append(content.Text, DescriptorText{
					Value: escapePercent(segment),
					Pos:   [2]float64{round1(x), round1(line.Y)},
					Font:  DescriptorFont{Name: line.Font, Size: line.Size},
				})
				x += TextWidth(segment, line.Font, line.Size)
			}
		}
		d.Pages[strconv.Itoa(page.Number)] = DescriptorPage{Content: content}
	}
	return d
}

// JSON encodes the descriptor for api.Create.
func (l Layout) JSON() ([]byte, error) {
	data, err := json.Marshal(l.Descriptor())
	if err != nil {
		return nil, fmt.Errorf("pdf: encode descriptor: %w", err)
	}
	return data, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pdfcpu expands %p, %P, %t and %v in text boxes. A run of n percent signs
// prints n-1 of them but still arms the following verb, so a line is split
// into separate boxes wherever a run is directly followed by a verb letter.
func percentSegments(s string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 >= len(s) {
			continue
		}
		if strings.IndexByte("pPtv", s[i+1]) >= 0 {
			segments = append(segments, s[start:i+1])
			start = i + 1
		}
	}
	return append(segments, s[start:])
}

// escapePercent doubles every run of percent signs for pdfcpu.
func escapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteByte(s[i])
		if s[i] == '%' && (i+1 == len(s) || s[i+1] != '%') {
			sb.WriteByte('%')
		}
	}
	return sb.String()
}
