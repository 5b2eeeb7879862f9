package main

import "github.com/unkn0wn-root/walletthemes/internal/cli"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	cli.Main()
}
