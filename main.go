package main

import "task-manager-api.com/task-manager-api/cmd"

func main() {
	cmd.Execute()
}
