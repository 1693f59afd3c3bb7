/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package main

import (
	"github.com/appoptics/appoptics-devkit/cmd"
)

func main() {
	cmd.Execute()
}
