// Command frent is the terminal client for the frent movie rental service.
package main

import "frent-client/cmd/frent/commands"

func main() {
	commands.Execute()
}
