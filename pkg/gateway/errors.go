package gateway

import (
	"fmt"
	"strings"
)

// NotFoundError reports a document id the service does not know.
type NotFoundError struct {
	DocumentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %s not found", e.DocumentID)
}

// PermissionError reports a document the caller may not touch. The
// remedy is a sharing change, not a retry.
type PermissionError struct {
	DocumentID string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied for document %s", e.DocumentID)
}

// StaleDocumentError reports that the document moved past the revision
// the guard demanded. The caller should re-read and rebuild its
// indices; retrying the same call will fail again.
type StaleDocumentError struct {
	DocumentID string
	Expected   string
}

func (e *StaleDocumentError) Error() string {
	return fmt.Sprintf("document %s was modified since revision %s was read; re-read it or bypass the check with --force", e.DocumentID, e.Expected)
}

// RemoteError is any other failure the service reported.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote service returned status %d", e.Status)
	}
	return fmt.Sprintf("remote service returned status %d: %s", e.Status, e.Message)
}

// staleMessage reports whether a rejection message is the service's
// revision-precondition failure.
func staleMessage(msg, status string) bool {
	if status == "FAILED_PRECONDITION" {
		return true
	}
	lower := strings.ToLower(msg)
	return strings.Contains(msg, "requiredRevisionId") ||
		strings.Contains(lower, "document has been modified")
}
