package logout

import (
	"context"
	"fmt"

	"tableflip.dev/redline/pkg/store"
)

// Logout deletes the cached credential.
type Logout struct {
	Creds *store.Credentials
}

func (n *Logout) Do(ctx context.Context) error {
	existed, err := n.Creds.Erase()
	if err != nil {
		return err
	}
	if existed {
		fmt.Println("cached credential deleted")
	} else {
		fmt.Println("no cached credential found")
	}
	return nil
}
