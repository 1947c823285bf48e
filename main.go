package main

import "github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/cmd"

func main() {
	cmd.Execute()
}
