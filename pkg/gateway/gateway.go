// Package gateway is the remote boundary: it fetches raw documents and
// submits scheduled operation sequences as one atomic batch, attaching
// the revision precondition and classifying rejections.
package gateway

import (
	"context"

	"tableflip.dev/redline/pkg/edit"
)

// Result reports a successful mutation.
type Result struct {
	// Applied is the number of operations applied. Submission is one
	// atomic batch: on success every operation applied, on failure
	// none did.
	Applied int `json:"applied"`

	// RevisionID is the revision the precondition demanded, echoed by
	// the service when one was attached.
	RevisionID string `json:"revisionId,omitempty"`
}

// Gateway is the contract the runners need from the remote service.
type Gateway interface {
	// Fetch returns the raw document structure for parsing.
	Fetch(ctx context.Context, documentID string) ([]byte, error)

	// Revision returns the document's current revision token without
	// fetching the body.
	Revision(ctx context.Context, documentID string) (string, error)

	// Apply submits an already-scheduled operation sequence, guarded
	// by the revision precondition when one is set.
	Apply(ctx context.Context, documentID string, ordered []edit.Operation, guard edit.Guard) (*Result, error)
}
