/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/contractops/contract-gin/cmd"

func main() {
	cmd.Execute()
}
