package main

import "github.com/ThatOtherAndrew/Scanline/cmd"

func main() {
	cmd.Execute()
}
