package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	gowrites "github.com/reoring/gowrites"
	"github.com/reoring/gowrites/docvalue"
	"github.com/reoring/gowrites/writes"
)

func main() {
	var format string
	fs := flag.NewFlagSet("gowrites", flag.ExitOnError)
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	_ = fs.Parse(os.Args[1:])

	doc := sampleDocument()

	var out []byte
	var err error
	switch format {
	case "json":
		out, err = docvalue.EncodeJSON(doc)
	case "yaml":
		out, err = docvalue.EncodeYAML(doc)
	default:
		fmt.Fprintf(os.Stderr, "gowrites: unknown format %q (want json or yaml)\n", format)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gowrites: encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// sampleDocument exercises the writer catalog end to end: scalars, a merged
// record writer, containers, optionals, and both time encodings.
func sampleDocument() docvalue.Value {
	type account struct {
		ID      string
		Balance json.Number
	}

	accountWriter := gowrites.ContraMapObject(
		gowrites.Merge(
			gowrites.Field("id", writes.String()),
			gowrites.Field("balance", writes.Decimal()),
		),
		func(a account) gowrites.Pair[string, json.Number] {
			return gowrites.PairOf(a.ID, a.Balance)
		},
	)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var nickname *string

	doc := docvalue.NewObject()
	doc.Set("account", accountWriter.WriteValue(account{ID: "acc_1", Balance: json.Number("10.50")}))
	doc.Set("tags", gowrites.Write(writes.Slice(writes.String()), []string{"a", "b"}))
	doc.Set("nickname", gowrites.Write(writes.Optional(writes.String()), nickname))
	doc.Set("created", gowrites.Write(writes.TimeMillis(), created))
	doc.Set("createdDate", gowrites.Write(writes.TimeFormat("2006-01-02"), created))
	return doc
}
