package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/voyagedesk/passport-tracker/internal/mrz"
)

// mrzscan decodes a machine-readable zone from recognized text on disk.
// Useful for checking extraction behavior against scanner output without a
// running server.
func main() {
	threshold := flag.Int("century-threshold", mrz.DefaultCenturyThreshold, "two-digit year distance treated as 19xx")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-century-threshold N] <text-file>\n", os.Args[0])
		os.Exit(2)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	extractor := mrz.NewExtractor(mrz.DateDecoder{CenturyThreshold: *threshold})
	fields, err := extractor.Extract(string(raw))
	if err != nil {
		log.Fatalf("extract: %v", err)
	}

	out, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(out))
}
