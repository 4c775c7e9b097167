// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/easify/easify/cmd/easify"

func main() {
	cmd.Execute()
}
