// Command devfile normalizes STM32CubeMX part descriptions into device files.
package main

import "github.com/OpenTraceLab/devfile/cmd/devfile/cmd"

func main() {
	cmd.Execute()
}
