package main

import "github.com/shrek198/thrive-well-tracker/cmd/thrive"

func main() {
	thrive.Execute()
}
