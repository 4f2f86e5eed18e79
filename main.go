package main

import (
	"github.com/erp-tools/odooconn/cmd"
)

func main() {
	cmd.Execute()
}
