package cmd

import (
	"os"

	"github.com/spf13/cobra"

	iso8583 "github.com/mkadit/iso8583-df61"
)

var (
	parseHeader bool
	parseFamily string
	parseNested bool
	parseJSON   bool
	parseWire   string
)

func parseMessage(args []string) *messageView {
	codecs := loadCodecs(iso8583.WithHeader(parseHeader))

	if parseWire != "" {
		data, err := os.ReadFile(parseWire)
		checkErr(err)
		msg, err := codecs.Main.ParseWire(data)
		if err != nil {
			bailf("failed to parse wire message: %v", err)
		}
		view, err := newMessageView(msg, codecs.Main.Registry())
		checkErr(err)
		return view
	}

	if len(args) != 1 {
		bailf("expected one message argument or --wire")
	}
	text, err := iso8583.EncodeText(args[0])
	checkErr(err)

	if familyName(parseFamily) == iso8583.FamilyDF61 {
		msg, err := codecs.DF61.Parse(text)
		if err != nil {
			bailf("failed to parse message: %v", err)
		}
		view, err := newMessageView(msg, codecs.DF61.Registry())
		checkErr(err)
		return view
	}

	if !parseNested {
		msg, err := codecs.Main.Parse(text)
		if err != nil {
			bailf("failed to parse message: %v", err)
		}
		view, err := newMessageView(msg, codecs.Main.Registry())
		checkErr(err)
		return view
	}

	msg, sub, err := codecs.ParseNested(text)
	if err != nil {
		bailf("failed to parse message: %v", err)
	}
	view, err := newMessageView(msg, codecs.Main.Registry())
	checkErr(err)
	if sub != nil {
		view.DF61, err = newMessageView(sub, codecs.DF61.Registry())
		checkErr(err)
	}
	return view
}

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse a message and print its fields",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view := parseMessage(args)
		if parseJSON {
			checkErr(writeJSON(os.Stdout, view))
			return
		}
		writeText(os.Stdout, view, "")
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseHeader, "header", "", false, "message starts with a {H,L} size prefix")
	parseCmd.Flags().StringVarP(&parseFamily, "family", "f", "common", "message family (common, df61)")
	parseCmd.Flags().BoolVarP(&parseNested, "nested", "n", false, "also parse the DF61 sub-message in field 61")
	parseCmd.Flags().BoolVarP(&parseJSON, "json", "", false, "print JSON")
	parseCmd.Flags().StringVarP(&parseWire, "wire", "w", "", "read a length-prefixed binary message from a file")
}
