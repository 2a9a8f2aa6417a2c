// cmd/zfac/main.go
package main

import (
	"zfac/internal/app"
	"zfac/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
