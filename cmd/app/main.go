package main

import (
	"github.com/moviedeck/core/internal/app"
	"github.com/moviedeck/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
