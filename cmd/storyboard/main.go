// Package main provides the storyboard CLI.
package main

func main() {
	Execute()
}
