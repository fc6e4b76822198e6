package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	iso8583 "github.com/mkadit/iso8583-df61"
)

var colors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgBlue),
	color.New(color.FgYellow),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
}

func fieldColor(n int) *color.Color {
	return colors[n%len(colors)]
}

type fieldView struct {
	Number int    `json:"id"`
	Name   string `json:"name,omitempty"`
	Data   string `json:"data"`
}

type messageView struct {
	Family string       `json:"family"`
	Prefix string       `json:"prefix,omitempty"`
	MTI    string       `json:"mti,omitempty"`
	Bitmap string       `json:"bitmap"`
	Size   int          `json:"size"`
	Fields []fieldView  `json:"fields"`
	DF61   *messageView `json:"df61,omitempty"`
}

func newMessageView(msg *iso8583.Message, reg *iso8583.Registry) (*messageView, error) {
	view := &messageView{
		Family: msg.Family,
		Prefix: msg.RoutingPrefix,
		MTI:    msg.MTI,
		Bitmap: msg.BitmapHex(),
		Size:   msg.DeclaredSize,
	}
	for _, f := range msg.Fields.All() {
		data, err := iso8583.DecodeText(f.Data)
		if err != nil {
			return nil, err
		}
		def, _ := reg.ByNumber(f.Number)
		view.Fields = append(view.Fields, fieldView{Number: f.Number, Name: def.Name, Data: data})
	}
	return view, nil
}

func writeJSON(w io.Writer, view *messageView) error {
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeText(w io.Writer, view *messageView, indent string) {
	if view.MTI != "" {
		fmt.Fprintf(w, "%sprefix %s  mti %s\n", indent, view.Prefix, view.MTI)
	}
	fmt.Fprintf(w, "%s%s bitmap %s  size %d\n", indent, view.Family, view.Bitmap, view.Size)
	for _, f := range view.Fields {
		fieldColor(f.Number).Fprintf(w, "%s%3d", indent, f.Number)
		fmt.Fprintf(w, "  %-40s [%s]\n", f.Name, f.Data)
	}
	if view.DF61 != nil {
		fmt.Fprintf(w, "%s  field %d:\n", indent, iso8583.PrivateField)
		writeText(w, view.DF61, indent+"    ")
	}
}
