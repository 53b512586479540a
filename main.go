package main

import (
	"page-extract/internal/bootstrap"
)

func main() {
	bootstrap.NewApp().Run()
}
