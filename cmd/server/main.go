package main

import (
	"github.com/dwarvesf/satscope-backend/internal/server"
)

func main() {
	server.Init()
}
