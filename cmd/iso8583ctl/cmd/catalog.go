package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	iso8583 "github.com/mkadit/iso8583-df61"
)

var (
	catalogFamily string
	catalogJSON   bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the field definitions of a message family",
	Run: func(cmd *cobra.Command, args []string) {
		codecs := loadCodecs()
		reg := codecs.Main.Registry()
		if familyName(catalogFamily) == iso8583.FamilyDF61 {
			reg = codecs.DF61.Registry()
		}

		if catalogJSON {
			data, err := json.MarshalIndent(iso8583.FamilyDefinition{
				Name:   reg.Family(),
				Peer:   iso8583.PeerCommon,
				Fields: reg.Definitions(),
			}, "", "  ")
			checkErr(err)
			fmt.Println(string(data))
			return
		}

		for _, def := range reg.Definitions() {
			p := def.Pattern()
			fieldColor(def.Number).Fprintf(os.Stdout, "%3d", def.Number)
			fmt.Printf("  %-12s %-14s %s\n", def.Representation, p.Kind(), def.Name)
		}
		fmt.Printf("%d fields, %d distinct representations\n", reg.Len(), codecs.Compiler.Len())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogFamily, "family", "f", "common", "message family (common, df61)")
	catalogCmd.Flags().BoolVarP(&catalogJSON, "json", "", false, "print the family as a JSON catalog entry")
}
