package reports

import (
	"encoding/json"
	"hash/fnv"
)

// Used by style
const (
	DEFAULT = iota + 1

	// Number format
	NUMBER
	PERCENT

	// Text position
	LEFT
	RIGHT
	CENTER
)

// formatFont directly maps the styles settings of the fonts.
type formatFont struct {
	Bold  bool   `json:"bold"`
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

type formatAlignment struct {
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical,omitempty"`
	WrapText   bool   `json:"wrap_text"`
}

type formatBorder struct {
	Type  string `json:"type"`
	Color string `json:"color"`
	Style int    `json:"style"`
}

// formatStyle directly maps the styles settings of the cells.
type formatStyle struct {
	Border       []formatBorder   `json:"border,omitempty"`
	Font         *formatFont      `json:"font,omitempty"`
	Alignment    *formatAlignment `json:"alignment,omitempty"`
	CustomNumFmt *string          `json:"custom_number_format,omitempty"`
}

//
// newFormat provides a struct to create style for cells
//
func newFormat(format int, position int, bold bool) (f *formatStyle) {
	f = &formatStyle{}

	custom := ""
	switch format {
	case PERCENT:
		custom = "0.0%;-0.0%;- "
	case NUMBER:
		custom = "#,##0.0;(#,##0.0);\"-\""
	}
	if custom != "" {
		f.CustomNumFmt = &custom
	}

	switch position {
	case RIGHT:
		f.Alignment = &formatAlignment{Horizontal: "right"}
	case CENTER:
		f.Alignment = &formatAlignment{Horizontal: "center"}
	}

	if bold {
		f.Font = &formatFont{Bold: true}
	}

	return
}

func (f *formatStyle) underline() *formatStyle {
	f.Border = []formatBorder{{Type: "bottom", Color: "333333", Style: 1}}
	return f
}

func (f *formatStyle) wrap() *formatStyle {
	if f.Alignment == nil {
		f.Alignment = &formatAlignment{Horizontal: "left"}
	}
	f.Alignment.Vertical = "top"
	f.Alignment.WrapText = true
	return f
}

//
// newStyle returns the excelize style id for f, reusing the ids already
// created on the same file.
//
func (f formatStyle) newStyle(e *Excel) int {
	j, err := json.Marshal(f)
	if err != nil {
		return 0
	}

	s := string(j)
	k := hash(s)
	if id, ok := e.styles[k]; ok {
		return id
	}

	style, err := e.xlsx.NewStyle(s)
	if err != nil {
		return 0
	}
	e.styles[k] = style

	return style
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
