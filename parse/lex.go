// Package parse splits shell-style command lines into argument vectors.
package parse

import "github.com/google/shlex"

// Split splits s the way a POSIX shell would, honoring quotes and escapes
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
