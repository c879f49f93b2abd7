package main

import (
	"os"

	"github.com/arthur-debert/skillhook/cmd/skillhook"
)

func main() {
	os.Exit(skillhook.Execute())
}
