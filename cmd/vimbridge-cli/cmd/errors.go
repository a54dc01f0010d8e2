package cmd

import "errors"

// errNotOpened is returned after the diagnostic has already been logged
var errNotOpened = errors.New("file not opened")
