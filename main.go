package main

import (
	"github.com/quill-social/cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
