package main

import (
	root "github.com/lido333/openvm/cmd"
)

func main() {
	root.Execute()
}
