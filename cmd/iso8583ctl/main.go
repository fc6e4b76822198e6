package main

import "github.com/mkadit/iso8583-df61/cmd/iso8583ctl/cmd"

func main() {
	cmd.Execute()
}
