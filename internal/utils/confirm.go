// Package utils provides utility functions.
package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes msg to w and reads a y/n answer from r. Returns true for yes.
// End of input counts as no.
func Confirm(w io.Writer, r io.Reader, msg string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", msg)
	line, _ := bufio.NewReader(r).ReadString('\n')
	resp := strings.TrimSpace(strings.ToLower(line))
	return resp == "y" || resp == "yes"
}
