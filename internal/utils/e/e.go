package e

import "fmt"

// Wrap prefixes err with msg, keeping it matchable with errors.Is
func Wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapIfErr is Wrap for deferred assignments
func WrapIfErr(msg string, err *error) {
	if *err != nil {
		*err = Wrap(msg, *err)
	}
}
