package main

import (
	"fmt"
	"os"

	"github.com/docport/doctor-portal/cmd/cli/auth"
	"github.com/docport/doctor-portal/cmd/cli/clowns"
	"github.com/docport/doctor-portal/cmd/cli/root"
)

func main() {
	auth.InitAuth(root.GetRoot())
	clowns.InitClowns(root.GetRoot())

	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
