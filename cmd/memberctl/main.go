package main

import (
	"github.com/dernekapp/memberregistry-go/internal/cli"
)

func main() {
	cli.Execute()
}
