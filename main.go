// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cardbox/cmd/cardbox"

func main() {
	cmd.Execute()
}
