package kafka

import (
	"context"
)

// Header is an extra key/value pair attached to a produced record.
type Header struct {
	Key   string
	Value []byte
}

type Producer interface {
	Send(ctx context.Context, key, value []byte, headers ...Header) error
}
