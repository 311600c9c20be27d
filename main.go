// Package main library API.
//
// @title           Library Management API
// @version         1.0
// @description     Books and members over a relational store; book writes need a login token.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description  Raw token from POST /login, no scheme prefix
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
