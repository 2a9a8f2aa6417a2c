// cmd/zfac-sweep/main.go
package main

import (
	"zfac/internal/appshell"
	"zfac/internal/sweepapp"
)

func main() { appshell.Main(sweepapp.RunContext) }
