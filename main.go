// main.go
package main

import "moviehub/cmd"

func main() {
	cmd.Execute()
}
