package main

import "github.com/devicelab-dev/workflow-report/pkg/cli"

func main() {
	cli.Execute()
}
