package main

import "github.com/thereayou/skillconnect/cmd/server"

func main() {
	server.NewServer().Run()
}
