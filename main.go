// webcite: build a bibliographic citation for a web page.
//
//	webcite cite <url> [--markdown|--html|--json|--pdf] [--output_dir DIR]
//	webcite serve [--addr :8080]
package main

import "github.com/gaurav-prasanna/webcite/cmd"

func main() {
	cmd.Execute()
}
