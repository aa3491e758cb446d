package find

import (
	"context"
	"encoding/json"
	"fmt"

	"tableflip.dev/redline/pkg/doc"
	"tableflip.dev/redline/pkg/gateway"
	"tableflip.dev/redline/pkg/printers"
)

// Find locates a section by exact heading text.
type Find struct {
	DocumentID string
	Heading    string
	JSON       bool

	Gateway gateway.Gateway
}

func (f *Find) Do(ctx context.Context) error {
	raw, err := f.Gateway.Fetch(ctx, f.DocumentID)
	if err != nil {
		return err
	}
	snap, err := doc.Parse(raw)
	if err != nil {
		return err
	}
	sec, err := doc.FindSection(snap, f.Heading)
	if err != nil {
		return err
	}

	if f.JSON {
		out, err := json.MarshalIndent(sec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Section(sec)
	return nil
}
