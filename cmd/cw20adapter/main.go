package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/babylonlabs-io/cw20-adapter/app/params"
	"github.com/babylonlabs-io/cw20-adapter/cmd/cw20adapter/cmd"
)

func main() {
	params.SetAddressPrefixes()
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		log.NewLogger(rootCmd.OutOrStderr()).Error("failure when running cw20adapter", "err", err)
		os.Exit(1)
	}
}
