package cbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
)
