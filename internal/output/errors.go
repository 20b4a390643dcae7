package output

import "errors"

var ErrNotArray = errors.New("JSON document is not an array of records")
