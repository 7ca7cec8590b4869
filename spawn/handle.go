package spawn

import "github.com/go-garrison/garrison/mailbox"

// Handle is returned to the caller of Spawn: enough to address the child
// afterwards without retaining the record itself.
type Handle struct {
	ID       string
	Producer mailbox.Producer
}
