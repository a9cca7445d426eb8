package main

import "github.com/lloydmeta/notably/app/cmd"

func main() {
	cmd.Execute()
}

// @title Notably API
// @version 0.0.1
// @description Notes backed by MySQL, plus an in-memory number registry

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:3000
// @BasePath /
