package main

import "github.com/redactyl/secretscan/cmd/secretscan"

func main() { secretscan.Execute() }
