package read

import (
	"context"
	"encoding/json"
	"fmt"

	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/gateway"
	"tableflip.dev/redline/pkg/printers"
)

// Read fetches a document and prints its parsed snapshot.
type Read struct {
	DocumentID string
	Format     string // json, text, or table

	Gateway gateway.Gateway
}

func (r *Read) Do(ctx context.Context) error {
	raw, err := r.Gateway.Fetch(ctx, r.DocumentID)
	if err != nil {
		return err
	}
	snap, err := doc.Parse(raw)
	if err != nil {
		return err
	}

	switch r.Format {
	case "text":
		fmt.Print(snap.FullText)
	case "table":
		pp := printers.PrettyPrint{}
		pp.Snapshot(snap)
	default:
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}
