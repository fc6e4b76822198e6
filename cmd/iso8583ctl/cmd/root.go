package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	iso8583 "github.com/mkadit/iso8583-df61"
)

var (
	catalogFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "iso8583ctl",
	Short: "parse, build and inspect ISO8583 messages with DF61 sub-messages",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadCodecs(opts ...iso8583.CodecOption) *iso8583.Codecs {
	var cat *iso8583.Catalog
	if catalogFile != "" {
		var err error
		cat, err = iso8583.LoadCatalogFile(catalogFile)
		if err != nil {
			bailf("failed to load catalog: %v", err)
		}
	}
	opts = append(opts, iso8583.WithLogger(newLogger()))
	codecs, err := iso8583.NewCodecs(cat, opts...)
	if err != nil {
		bailf("failed to bind catalog: %v", err)
	}
	return codecs
}

// familyName maps the --family flag to a catalog family name.
func familyName(s string) string {
	switch strings.ToLower(s) {
	case "", "common", "main":
		return iso8583.FamilyCommon
	case "df61":
		return iso8583.FamilyDF61
	}
	bailf("unknown family %q: want common or df61", s)
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "catalog", "c", "", "field catalog file (.json, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}
