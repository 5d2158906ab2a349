// The gactl command is the operator CLI for the decision engine.
package main

import "github.com/turtacn/GenApp-Engine/internal/interfaces/cli"

func main() {
	cli.Execute()
}
