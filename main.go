package main

import "github.com/ugovaretto/s3demo/cmd"

func main() {
	cmd.Execute()
}
