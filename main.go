package main

import "github.com/gaurav-prasanna/convopdf/cmd"

func main() {
	cmd.Execute()
}
