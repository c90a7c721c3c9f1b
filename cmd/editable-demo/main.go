// Command editable-demo runs the editable widget inside a terminal editor.
package main

import (
	"fmt"
	"os"

	"github.com/iw2rmb/editable"
)

func main() {
	rootCmd.Version = editable.Version()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
