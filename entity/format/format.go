package format

import (
	"fmt"
	"strings"
)

type Format int8

const (
	HTML Format = iota
	Png
	Csv
)

func UnmarshalText(text string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(text, ".")) {
	case "html", "htm":
		return HTML, nil
	case "png":
		return Png, nil
	case "csv":
		return Csv, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case Png:
		return "png"
	case Csv:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}

// Ext returns the file extension of f, including the leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}
